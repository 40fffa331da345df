//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turkishstudent/backend/internal/models"
)

func TestIntegration_GrammarLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	defer cleanupTestData(t, testDB)

	w := doRequest(t, http.MethodPost, "/api/v1/admin/grammar", `{
		"title": "Plural suffix",
		"explanation": "-ler after front vowels, -lar after back vowels",
		"grammarType": "suffix",
		"difficultyLevel": 1,
		"examples": [{"tr": "evler", "en": "houses"}],
		"rules": ["e, i, ö, ü take -ler", "a, ı, o, u take -lar"]
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.GrammarPoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = doRequest(t, http.MethodGet, "/api/v1/grammar/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.GrammarPoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.JSONEq(t, `[{"tr":"evler","en":"houses"}]`, string(fetched.Examples))
	assert.Equal(t, []string{"e, i, ö, ü take -ler", "a, ı, o, u take -lar"}, fetched.Rules)

	w = doRequest(t, http.MethodPatch, "/api/v1/admin/grammar/"+created.ID, `{"examples":null,"exceptions":["saat takes -ler"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.GrammarPoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Empty(t, updated.Examples)
	assert.Equal(t, []string{"saat takes -ler"}, updated.Exceptions)

	w = doRequest(t, http.MethodGet, "/api/v1/grammar?grammarType=suffix", "")
	require.Equal(t, http.StatusOK, w.Code)
	var page models.Page[models.GrammarListItem]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Total)

	w = doRequest(t, http.MethodPost, "/api/v1/admin/grammar", `{"title":"x","explanation":"y","rules":["a",3]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, http.MethodDelete, "/api/v1/admin/grammar/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, http.MethodDelete, "/api/v1/admin/grammar/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
