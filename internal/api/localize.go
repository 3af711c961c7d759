package api

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

// language reads the ?language= query, defaulting to English.
func language(c *gin.Context) string {
	lang := strings.ToLower(strings.TrimSpace(c.Query("language")))
	if models.IsSupportedLocale(lang) {
		return lang
	}
	return models.DefaultLocale
}

// localizedView serializes an entity with extra display fields merged in.
type localizedView struct {
	entity  interface{}
	display map[string]string
}

func (v localizedView) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(v.entity)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	for k, s := range v.display {
		encoded, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		fields[k] = encoded
	}
	return json.Marshal(fields)
}

// localize adds displayName and displayDescription (displayTip for tips)
// resolved for lang. English responses are returned unchanged.
func localize(entity models.Localized, lang string) interface{} {
	if lang == models.LocaleEnglish {
		return entity
	}
	if tip, ok := entity.(*models.DailyTip); ok {
		return localizedView{entity: entity, display: map[string]string{
			"displayTip": tip.Tip.Resolve(lang),
		}}
	}
	return localizedView{entity: entity, display: map[string]string{
		"displayName":        entity.LocalizedName().Resolve(lang),
		"displayDescription": entity.LocalizedDescription().Resolve(lang),
	}}
}

func localizeList[T any, PT interface {
	*T
	models.Localized
}](items []T, lang string) []interface{} {
	out := make([]interface{}, len(items))
	for i := range items {
		out[i] = localize(PT(&items[i]), lang)
	}
	return out
}
