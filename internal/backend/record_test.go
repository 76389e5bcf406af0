package backend

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAccessors(t *testing.T) {
	rec, err := DecodeRecord(json.RawMessage(`{
		"id": 12,
		"nom": "  Le Bistrot ",
		"name": "ignored",
		"prix": "12,50",
		"stock": "7",
		"actif": true,
		"date_creation": "2026-03-01",
		"updated": "2026-03-01T10:00:00Z",
		"vide": null,
		"objet": {"a": 1}
	}`))
	require.NoError(t, err)

	id, err := rec.ID("id")
	require.NoError(t, err)
	assert.Equal(t, "12", id)
	assert.Equal(t, "Le Bistrot", rec.String("nom", "name"))
	assert.Equal(t, "ignored", rec.String("vide", "name"))
	assert.Equal(t, "12.5", rec.Decimal("prix").String())
	assert.Equal(t, 7, rec.Int("stock"))
	assert.True(t, rec.Bool("actif"))
	assert.Equal(t, "", rec.String("objet"))
	assert.Equal(t, 0, rec.Int("missing"))

	created := rec.Time("date_creation")
	require.NotNil(t, created)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *created)
	assert.NotNil(t, rec.Time("updated"))
	assert.Nil(t, rec.Time("nom"))
}

func TestRecordMissingID(t *testing.T) {
	rec, err := DecodeRecord(json.RawMessage(`{"id": null}`))
	require.NoError(t, err)
	_, err = rec.ID("id", "_id")
	assert.Error(t, err)
}

func TestDecodeRecordRejectsNonObjects(t *testing.T) {
	_, err := DecodeRecord(json.RawMessage(`[1,2]`))
	assert.Error(t, err)
	_, err = DecodeRecord(json.RawMessage(`null`))
	assert.Error(t, err)
}
