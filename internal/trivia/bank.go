// Package trivia provides the static question bank for the lobby mini-game.
package trivia

import "strings"

// Question is one prompt/answer pair. Answers are matched case-insensitively
// against the trimmed candidate text.
type Question struct {
	Prompt string
	Answer string
}

// Bank is an ordered, cyclically indexed list of questions.
type Bank struct {
	questions []Question
}

// NewBank returns the default question set.
func NewBank() *Bank {
	return NewBankWith([]Question{
		{Prompt: "What is the capital of France?", Answer: "paris"},
		{Prompt: "What is 2 + 2?", Answer: "4"},
		{Prompt: "What color do you get by mixing red and white?", Answer: "pink"},
		{Prompt: "How many legs does a spider have?", Answer: "8"},
		{Prompt: "Which planet is known as the Red Planet?", Answer: "mars"},
		{Prompt: "What gas do humans need to breathe?", Answer: "oxygen"},
		{Prompt: "Which animal is known as the king of the jungle?", Answer: "lion"},
		{Prompt: "What’s the tallest animal on Earth?", Answer: "giraffe"},
		{Prompt: "How many days are in a leap year?", Answer: "366"},
		{Prompt: "What do bees produce?", Answer: "honey"},
	})
}

// NewBankWith builds a bank from an explicit question list.
func NewBankWith(questions []Question) *Bank {
	return &Bank{questions: questions}
}

// At returns the effective question for a monotonically increasing index,
// wrapping modulo the bank length.
func (b *Bank) At(index int) Question {
	return b.questions[index%len(b.questions)]
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Matches reports whether the candidate answers the question at index.
// Comparison is exact after trimming whitespace and folding case.
func (b *Bank) Matches(index int, candidate string) bool {
	return strings.EqualFold(strings.TrimSpace(candidate), b.At(index).Answer)
}
