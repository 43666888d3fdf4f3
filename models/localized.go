package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// LocalizedText is a translated text block keyed by language code.
// Older documents store these fields as bare strings; both shapes are
// accepted on read, and a value is written back in the shape it arrived
// in so legacy records survive round trips untouched.
type LocalizedText struct {
	Tr string `json:"tr"`
	En string `json:"en"`
	Ru string `json:"ru"`
	It string `json:"it"`

	plain   string
	isPlain bool
}

// Plain wraps a legacy single-string text value.
func Plain(s string) LocalizedText {
	return LocalizedText{plain: s, isPlain: true}
}

// Localized builds a fully translated text value.
func Localized(tr, en, ru, it string) LocalizedText {
	return LocalizedText{Tr: tr, En: en, Ru: ru, It: it}
}

// IsPlain reports whether the value carries the legacy single-string shape.
func (t LocalizedText) IsPlain() bool { return t.isPlain }

// PlainValue returns the legacy string for plain values, empty otherwise.
func (t LocalizedText) PlainValue() string { return t.plain }

type localizedDoc struct {
	Tr string `json:"tr" bson:"tr"`
	En string `json:"en" bson:"en"`
	Ru string `json:"ru" bson:"ru"`
	It string `json:"it" bson:"it"`
}

func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if t.isPlain {
		return json.Marshal(t.plain)
	}
	return json.Marshal(localizedDoc{Tr: t.Tr, En: t.En, Ru: t.Ru, It: t.It})
}

func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = LocalizedText{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Plain(s)
		return nil
	}
	var doc localizedDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*t = LocalizedText{Tr: doc.Tr, En: doc.En, Ru: doc.Ru, It: doc.It}
	return nil
}

func (t LocalizedText) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if t.isPlain {
		return bson.MarshalValue(t.plain)
	}
	return bson.MarshalValue(localizedDoc{Tr: t.Tr, En: t.En, Ru: t.Ru, It: t.It})
}

func (t *LocalizedText) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	switch bt {
	case bsontype.Null:
		*t = LocalizedText{}
		return nil
	case bsontype.String:
		var s string
		if err := bson.UnmarshalValue(bt, data, &s); err != nil {
			return err
		}
		*t = Plain(s)
		return nil
	case bsontype.EmbeddedDocument:
		var doc localizedDoc
		if err := bson.UnmarshalValue(bt, data, &doc); err != nil {
			return err
		}
		*t = LocalizedText{Tr: doc.Tr, En: doc.En, Ru: doc.Ru, It: doc.It}
		return nil
	default:
		return fmt.Errorf("cannot decode %s into LocalizedText", bt)
	}
}
