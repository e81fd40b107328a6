package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplyKeywordHits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "services question", input: "What services do you offer?", want: knowledge[0].answer},
		{name: "uppercase input", input: "TELL ME ABOUT YOUR SERVICES", want: knowledge[0].answer},
		{name: "real estate", input: "do you work with real estate clients", want: knowledge[1].answer},
		{name: "pricing", input: "how much does it cost", want: knowledge[2].answer},
		{name: "portfolio", input: "can I see a case study", want: knowledge[3].answer},
		{name: "booking", input: "i want to book a meeting", want: knowledge[4].answer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reply(tt.input))
		})
	}
}

func TestReplyFirstEntryWins(t *testing.T) {
	// "property" and "price" both match; the earlier entry answers.
	assert.Equal(t, knowledge[1].answer, Reply("what is the price for a property campaign"))
}

func TestReplyFallback(t *testing.T) {
	inputs := []string{
		"",
		"asdfghjkl",
		"tell me about the weather",
	}

	for _, input := range inputs {
		assert.Equal(t, Fallback, Reply(input))
		assert.False(t, Matched(input))
	}
}

func TestMatched(t *testing.T) {
	assert.True(t, Matched("what do you do"))
	assert.False(t, Matched("hello there"))
}
