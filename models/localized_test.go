package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestLocalizedTextAcceptsBothJSONShapes(t *testing.T) {
	var localized LocalizedText
	require.NoError(t, json.Unmarshal([]byte(`{"tr":"Kombi","en":"Combi","ru":"Комби","it":"Caldaia"}`), &localized))
	assert.False(t, localized.IsPlain())
	assert.Equal(t, "Combi", localized.En)

	var plain LocalizedText
	require.NoError(t, json.Unmarshal([]byte(`"old style name"`), &plain))
	assert.True(t, plain.IsPlain())
	assert.Equal(t, "old style name", plain.PlainValue())
}

func TestLocalizedTextKeepsShapeOnWrite(t *testing.T) {
	out, err := json.Marshal(Plain("legacy"))
	require.NoError(t, err)
	assert.Equal(t, `"legacy"`, string(out), "a plain value stays a bare string")

	out, err = json.Marshal(Localized("a", "b", "c", "d"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"tr":"a","en":"b","ru":"c","it":"d"}`, string(out))
}

func TestLocalizedTextBSONRoundTrip(t *testing.T) {
	type doc struct {
		Name LocalizedText `bson:"name"`
	}

	for _, value := range []LocalizedText{Plain("legacy"), Localized("a", "b", "c", "d")} {
		raw, err := bson.Marshal(doc{Name: value})
		require.NoError(t, err)

		var decoded doc
		require.NoError(t, bson.Unmarshal(raw, &decoded))
		assert.Equal(t, value, decoded.Name)
	}
}

func TestLocalizedTextDecodesLegacyBSONString(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"name": "old style name"})
	require.NoError(t, err)

	var decoded struct {
		Name LocalizedText `bson:"name"`
	}
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.True(t, decoded.Name.IsPlain())
	assert.Equal(t, "old style name", decoded.Name.PlainValue())
}
