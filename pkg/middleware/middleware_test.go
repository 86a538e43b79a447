package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
)

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		acceptLanguage string
		want           domain.Language
	}{
		{name: "Query string tem precedência", url: "/x?language=en", acceptLanguage: "ka-GE", want: domain.LanguageEnglish},
		{name: "Accept-Language quando não há query", url: "/x", acceptLanguage: "fr-FR,en;q=0.8", want: domain.LanguageEnglish},
		{name: "Query inválida cai no header", url: "/x?language=pt", acceptLanguage: "ka", want: domain.LanguageGeorgian},
		{name: "Sem nada usa o padrão", url: "/x", want: domain.LanguageGeorgian},
		{name: "Peso q maior vence a ordem do header", url: "/x", acceptLanguage: "en;q=0.1, ka;q=0.9", want: domain.LanguageGeorgian},
		{name: "Região é ignorada", url: "/x", acceptLanguage: "en-US,en;q=0.9", want: domain.LanguageEnglish},
		{name: "Idioma não suportado usa o padrão", url: "/x", acceptLanguage: "de-DE,fr;q=0.5", want: domain.LanguageGeorgian},
		{name: "Header malformado usa o padrão", url: "/x", acceptLanguage: ";;;q=abc", want: domain.LanguageGeorgian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}

			assert.Equal(t, tt.want, ResolveLanguage(req, domain.LanguageGeorgian))
		})
	}
}

func TestLanguageMiddleware(t *testing.T) {
	var got domain.Language
	handler := Language(domain.LanguageGeorgian)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LanguageFromContext(r.Context(), "")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/copilot/briefing?language=en", nil))

	assert.Equal(t, domain.LanguageEnglish, got)
	assert.Equal(t, "en", rec.Header().Get("Content-Language"))
}

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Cors([]string{"http://localhost:3000", " http://localhost:5173/ "})(next)

	t.Run("Origem liberada recebe cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/copilot/briefing", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Origem desconhecida não recebe cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/copilot/briefing", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde 200 sem chamar o handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/copilot/briefing", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
