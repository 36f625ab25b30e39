package handlers_test

import (
	"net/http"
	"testing"

	"github.com/mindmate/mindmate-server/internal/domain"
	"github.com/mindmate/mindmate-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entryResponse struct {
	Message string               `json:"message"`
	Entry   *domain.JournalEntry `json:"entry"`
}

func TestJournalHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]interface{}
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful creation",
			request: map[string]interface{}{
				"date":  "2024-01-01",
				"mood":  "calm",
				"entry": "ok",
				"tags":  []string{},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result entryResponse
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "Journal entry saved successfully", result.Message)
				assert.Equal(t, "calm", result.Entry.Mood)
			},
		},
		{
			name: "full timestamp date",
			request: map[string]interface{}{
				"date":  "2024-01-01T10:30:00Z",
				"mood":  "happy",
				"entry": "good day",
				"tags":  []string{"work", "sleep"},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing mood",
			request: map[string]interface{}{
				"date":  "2024-01-01",
				"entry": "ok",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing date",
			request: map[string]interface{}{
				"mood":  "calm",
				"entry": "ok",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unparseable date",
			request: map[string]interface{}{
				"date":  "tomorrow",
				"mood":  "calm",
				"entry": "ok",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			client := ts.Client(t)
			ts.Signup(t, client, "writer@x.com", "secret1")

			resp := ts.PostJSON(t, client, "/journal/", tt.request)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestJournalHandler_Create_OwnerForcedFromSession(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := ts.Client(t)

	me := ts.Signup(t, client, "owner@x.com", "secret1")
	intruder, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)

	// A client-supplied owner field is ignored; the entry belongs to the
	// authenticated identity.
	resp := ts.PostJSON(t, client, "/journal/", map[string]interface{}{
		"date":  "2024-01-01",
		"mood":  "calm",
		"entry": "ok",
		"user":  intruder.ID.String(),
	})
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var result entryResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, me.ID, result.Entry.UserID.String())
}

func TestJournalHandler_List(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("returns only own entries newest first", func(t *testing.T) {
		client := ts.Client(t)
		me := ts.Signup(t, client, "lister@x.com", "secret1")

		other, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
		testutil.NewEntryBuilder(other.ID).WithEntry("not visible").Build(t, ts.DB.DB)

		for _, text := range []string{"first", "second", "third"} {
			create := ts.PostJSON(t, client, "/journal/", map[string]interface{}{
				"date":  "2024-01-01",
				"mood":  "calm",
				"entry": text,
			})
			create.Body.Close()
			require.Equal(t, http.StatusCreated, create.StatusCode)
		}

		resp := ts.Get(t, client, "/journal/")
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var entries []*domain.JournalEntry
		testutil.AssertJSONResponse(t, resp, &entries)
		require.Len(t, entries, 3)
		assert.Equal(t, "third", entries[0].Entry)
		assert.Equal(t, "first", entries[2].Entry)
		for _, e := range entries {
			assert.Equal(t, me.ID, e.UserID.String())
		}
	})

	t.Run("without session", func(t *testing.T) {
		client := ts.Client(t)
		resp := ts.Get(t, client, "/journal/")
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})
}

func TestJournalHandler_Update(t *testing.T) {
	ts := testutil.NewTestServer(t)

	client := ts.Client(t)
	me := ts.Signup(t, client, "updater@x.com", "secret1")

	myEntry := testutil.NewEntryBuilder(uuidMustParse(t, me.ID)).
		WithMood("sad").
		Build(t, ts.DB.DB)

	other, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	theirEntry := testutil.NewEntryBuilder(other.ID).WithEntry("theirs").Build(t, ts.DB.DB)

	update := map[string]interface{}{
		"date":  "2024-02-02",
		"mood":  "hopeful",
		"entry": "better now",
		"tags":  []string{"therapy"},
	}

	t.Run("own entry", func(t *testing.T) {
		resp := ts.PutJSON(t, client, "/journal/"+myEntry.ID.String(), update)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result entryResponse
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "Journal entry updated", result.Message)
		assert.Equal(t, "hopeful", result.Entry.Mood)
	})

	t.Run("someone else's entry", func(t *testing.T) {
		resp := ts.PutJSON(t, client, "/journal/"+theirEntry.ID.String(), update)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Entry not found or unauthorized")

		// Unchanged
		var current domain.JournalEntry
		require.NoError(t, ts.DB.DB.First(&current, "id = ?", theirEntry.ID).Error)
		assert.Equal(t, "theirs", current.Entry)
	})

	t.Run("nonexistent entry gives the same error", func(t *testing.T) {
		resp := ts.PutJSON(t, client, "/journal/4f9c1b7e-0000-0000-0000-000000000000", update)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Entry not found or unauthorized")
	})

	t.Run("malformed id", func(t *testing.T) {
		resp := ts.PutJSON(t, client, "/journal/not-a-uuid", update)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Entry not found or unauthorized")
	})
}

func TestJournalHandler_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)

	client := ts.Client(t)
	me := ts.Signup(t, client, "deleter@x.com", "secret1")

	myEntry := testutil.NewEntryBuilder(uuidMustParse(t, me.ID)).Build(t, ts.DB.DB)

	other, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	theirEntry := testutil.NewEntryBuilder(other.ID).Build(t, ts.DB.DB)

	t.Run("someone else's entry", func(t *testing.T) {
		resp := ts.Delete(t, client, "/journal/"+theirEntry.ID.String())
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "not found or unauthorized")
	})

	t.Run("own entry", func(t *testing.T) {
		resp := ts.Delete(t, client, "/journal/"+myEntry.ID.String())
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		// Second delete: already gone
		again := ts.Delete(t, client, "/journal/"+myEntry.ID.String())
		defer again.Body.Close()
		testutil.AssertStatusCode(t, again, http.StatusNotFound)
	})
}

// Full journey: signup, login, create an entry, logout, then 401 without
// the cookie.
func TestJournal_SessionLifecycle(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := ts.Client(t)

	signedUp := ts.Signup(t, client, "a@x.com", "secret1")

	login := ts.PostJSON(t, client, "/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
	})
	var loggedIn testutil.UserResponse
	testutil.AssertJSONResponse(t, login, &loggedIn)
	login.Body.Close()
	assert.Equal(t, signedUp.ID, loggedIn.ID)

	create := ts.PostJSON(t, client, "/journal/", map[string]interface{}{
		"date":  "2024-01-01",
		"mood":  "calm",
		"entry": "ok",
		"tags":  []string{},
	})
	testutil.AssertStatusCode(t, create, http.StatusCreated)
	var created entryResponse
	testutil.AssertJSONResponse(t, create, &created)
	create.Body.Close()
	assert.Equal(t, signedUp.ID, created.Entry.UserID.String())

	logout := ts.PostJSON(t, client, "/auth/logout", nil)
	logout.Body.Close()
	testutil.AssertStatusCode(t, logout, http.StatusOK)

	list := ts.Get(t, client, "/journal/")
	defer list.Body.Close()
	testutil.AssertStatusCode(t, list, http.StatusUnauthorized)
}
