//go:build integration

package integration

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turkishstudent/backend/internal/models"
)

func doRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func TestIntegration_VocabularyLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	defer cleanupTestData(t, testDB)

	w := doRequest(t, http.MethodPost, "/api/v1/admin/vocabulary",
		`{"turkishWord":"merhaba","englishTranslation":"hello","difficultyLevel":"1","frequencyRank":12.5}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Vocabulary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.NotNil(t, created.DifficultyLevel)
	assert.Equal(t, 1, *created.DifficultyLevel)
	require.NotNil(t, created.FrequencyRank)
	assert.Equal(t, 12.5, *created.FrequencyRank)

	w = doRequest(t, http.MethodPost, "/api/v1/admin/vocabulary", `{"turkishWord":"merhaba","englishTranslation":"hi"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, http.MethodGet, "/api/v1/vocabulary/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, http.MethodPatch, "/api/v1/admin/vocabulary/"+created.ID, `{"englishTranslation":"hello there"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Vocabulary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "hello there", updated.EnglishTranslation)
	assert.Equal(t, "merhaba", updated.TurkishWord)

	w = doRequest(t, http.MethodPatch, "/api/v1/admin/vocabulary/"+created.ID, `{"englishTranslation":"hello there"}`)
	assert.Equal(t, http.StatusOK, w.Code, "unchanged update is not a miss")

	w = doRequest(t, http.MethodDelete, "/api/v1/admin/vocabulary/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, http.MethodGet, "/api/v1/vocabulary/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntegration_VocabularyList(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	defer cleanupTestData(t, testDB)

	for _, body := range []string{
		`{"turkishWord":"ev","englishTranslation":"house","difficultyLevel":1,"partOfSpeech":"noun"}`,
		`{"turkishWord":"evet","englishTranslation":"yes","difficultyLevel":1}`,
		`{"turkishWord":"kitap","englishTranslation":"book","difficultyLevel":2,"partOfSpeech":"noun"}`,
	} {
		w := doRequest(t, http.MethodPost, "/api/v1/admin/vocabulary", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedWords  []string
		expectedTotal  int
	}{
		{name: "all", query: "", expectedStatus: http.StatusOK, expectedWords: []string{"ev", "evet", "kitap"}, expectedTotal: 3},
		{name: "search", query: "?search=ev", expectedStatus: http.StatusOK, expectedWords: []string{"ev", "evet"}, expectedTotal: 2},
		{name: "difficulty", query: "?difficultyLevel=2", expectedStatus: http.StatusOK, expectedWords: []string{"kitap"}, expectedTotal: 1},
		{name: "part of speech", query: "?partOfSpeech=noun", expectedStatus: http.StatusOK, expectedWords: []string{"ev", "kitap"}, expectedTotal: 2},
		{name: "second page", query: "?limit=2&page=2", expectedStatus: http.StatusOK, expectedWords: []string{"kitap"}, expectedTotal: 3},
		{name: "invalid page", query: "?page=abc", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, http.MethodGet, "/api/v1/vocabulary"+tt.query, "")
			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var page models.Page[models.VocabularyListItem]
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
			assert.Equal(t, tt.expectedTotal, page.Total)
			words := make([]string, 0, len(page.Items))
			for _, item := range page.Items {
				words = append(words, item.TurkishWord)
			}
			assert.Equal(t, tt.expectedWords, words)
		})
	}
}
