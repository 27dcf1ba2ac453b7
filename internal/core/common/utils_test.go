package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Reasoning string  `json:"reasoning"`
}

func TestParseJSONPlain(t *testing.T) {
	out, err := ParseJSON[testPayload](`{"category":"maintenance","amount":43,"reasoning":"hardware"}`)
	require.NoError(t, err)
	assert.Equal(t, "maintenance", out.Category)
	assert.Equal(t, 43.0, out.Amount)
}

func TestParseJSONFenced(t *testing.T) {
	response := "```json\n{\"category\": \"events\", \"amount\": 12.5, \"reasoning\": \"party supplies\"}\n```"
	out, err := ParseJSON[testPayload](response)
	require.NoError(t, err)
	assert.Equal(t, "events", out.Category)
	assert.Equal(t, 12.5, out.Amount)
}

func TestParseJSONSurroundingProse(t *testing.T) {
	response := "Sure! Here is the classification:\n{\"category\":\"cleaning\",\"amount\":8,\"reasoning\":\"soap\"}\nLet me know if you need anything else."
	out, err := ParseJSON[testPayload](response)
	require.NoError(t, err)
	assert.Equal(t, "cleaning", out.Category)
}

func TestParseJSONNoObject(t *testing.T) {
	_, err := ParseJSON[testPayload]("I could not classify this receipt.")
	assert.Error(t, err)
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := ParseJSON[testPayload](`{"category": "maintenance",`)
	assert.Error(t, err)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences(`{"a":1}`))
}
