package middleware

import (
	"context"
	"net/http"

	"github.com/vfg2006/finance-copilot-api/internal/domain"
	"golang.org/x/text/language"
)

type contextKeyLanguage string

const languageKey contextKeyLanguage = "language"

var supportedLanguages = language.NewMatcher([]language.Tag{language.Georgian, language.English})

// Language resolve o idioma da requisição: ?language=, depois Accept-Language,
// depois o idioma padrão configurado
func Language(fallback domain.Language) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ResolveLanguage(r, fallback)
			ctx := context.WithValue(r.Context(), languageKey, lang)
			w.Header().Set("Content-Language", string(lang))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ResolveLanguage aplica a mesma ordem de precedência do middleware
func ResolveLanguage(r *http.Request, fallback domain.Language) domain.Language {
	if lang, ok := domain.ParseLanguage(r.URL.Query().Get("language")); ok {
		return lang
	}

	// Accept-Language: en;q=0.1, ka;q=0.9 (respeita os pesos q do cliente)
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err == nil && len(tags) > 0 {
		tag, _, confidence := supportedLanguages.Match(tags...)
		if confidence != language.No {
			base, _ := tag.Base()
			if lang, ok := domain.ParseLanguage(base.String()); ok {
				return lang
			}
		}
	}

	return fallback
}

// LanguageFromContext retorna o idioma resolvido pelo middleware
func LanguageFromContext(ctx context.Context, fallback domain.Language) domain.Language {
	if lang, ok := ctx.Value(languageKey).(domain.Language); ok {
		return lang
	}
	return fallback
}
