package backend

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	method string
	path   string
	body   any
}

type fakeDoer struct {
	calls    []call
	response string
	err      error
}

func (f *fakeDoer) record(method, path string, body, out any) error {
	f.calls = append(f.calls, call{method: method, path: path, body: body})
	if f.err != nil {
		return f.err
	}
	if out != nil && f.response != "" {
		return decodeEnvelope([]byte(f.response), out)
	}
	return nil
}

func (f *fakeDoer) Get(_ context.Context, _, path string, out any) error {
	return f.record("GET", path, nil, out)
}
func (f *fakeDoer) Post(_ context.Context, _, path string, body, out any) error {
	return f.record("POST", path, body, out)
}
func (f *fakeDoer) Put(_ context.Context, _, path string, body, out any) error {
	return f.record("PUT", path, body, out)
}
func (f *fakeDoer) Patch(_ context.Context, _, path string, body, out any) error {
	return f.record("PATCH", path, body, out)
}
func (f *fakeDoer) Delete(_ context.Context, _, path string) error {
	return f.record("DELETE", path, nil, nil)
}

type named struct {
	ID   string
	Name string
}

func parseNamed(raw json.RawMessage) (named, error) {
	rec, err := DecodeRecord(raw)
	if err != nil {
		return named{}, err
	}
	id, err := rec.ID("id")
	if err != nil {
		return named{}, err
	}
	return named{ID: id, Name: rec.String("nom", "name")}, nil
}

func TestResourcePaths(t *testing.T) {
	doer := &fakeDoer{response: `{"data":{"id":1,"nom":"x"}}`}
	res := NewResource(doer, "personnel", "/personnel/", parseNamed)
	ctx := context.Background()

	_, _ = res.Create(ctx, map[string]any{"nom": "x"})
	_, _ = res.Update(ctx, "1", map[string]any{"nom": "y"})
	_, _ = res.ChangeStatus(ctx, "1", "EN_CONGE")
	_ = res.Delete(ctx, "1")
	_, _ = res.Get(ctx, "a b")

	got := make([]string, 0, len(doer.calls))
	for _, c := range doer.calls {
		got = append(got, c.method+" "+c.path)
	}
	assert.Equal(t, []string{
		"POST /personnel",
		"PUT /personnel/1",
		"PATCH /personnel/status/EN_CONGE/1",
		"DELETE /personnel/1",
		"GET /personnel/a%20b",
	}, got)
}

func TestResourceGetByEstablishmentParses(t *testing.T) {
	doer := &fakeDoer{response: `{"message":"ok","data":[{"id":1,"nom":"A"},{"id":"2","name":"B"}]}`}
	res := NewResource(doer, "personnel", "personnel", parseNamed)

	items, err := res.GetByEstablishment(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, []named{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}, items)
	assert.Equal(t, "/personnel/etablissement/42", doer.calls[0].path)
}

func TestResourceParseErrorIsDecodeError(t *testing.T) {
	doer := &fakeDoer{response: `{"data":[{"nom":"no id"}]}`}
	res := NewResource(doer, "personnel", "personnel", parseNamed)

	_, err := res.GetByEstablishment(context.Background(), "1")
	require.Error(t, err)
	assert.Equal(t, fallbackDecodeMessage, err.Error())
}

func TestResourceEmptyResponses(t *testing.T) {
	doer := &fakeDoer{response: `{"message":"supprimé"}`}
	res := NewResource(doer, "personnel", "personnel", parseNamed)

	items, err := res.GetByEstablishment(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, items)

	doer.response = `{"message":"ok","data":null}`
	one, err := res.ChangeStatus(context.Background(), "1", "ACTIF")
	require.NoError(t, err)
	assert.Equal(t, named{}, one)
}

func TestResourcePropagatesErrors(t *testing.T) {
	doer := &fakeDoer{err: &Error{Status: 500, Message: "boom"}}
	res := NewResource(doer, "personnel", "personnel", parseNamed)
	_, err := res.GetByEstablishment(context.Background(), "1")
	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "boom", be.Message)
}

func TestResourceMessageOnlyCreate(t *testing.T) {
	doer := &fakeDoer{response: `{"message":"créé"}`}
	res := NewResource(doer, "personnel", "personnel", parseNamed)
	got, err := res.Create(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, named{}, got)
}
