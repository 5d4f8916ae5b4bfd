package classifier

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/statementbox/internal/model"
)

func TestClassifier_Classify(t *testing.T) {
	c := Default()

	tests := []struct {
		name string
		text string
		want model.Detection
	}{
		{
			name: "empty text",
			text: "",
			want: model.Detection{Type: model.StatementTypeUnknown},
		},
		{
			name: "whitespace only",
			text: "  \n\t ",
			want: model.Detection{Type: model.StatementTypeUnknown},
		},
		{
			name: "no markers",
			text: "quarterly newsletter about gardening",
			want: model.Detection{Type: model.StatementTypeUnknown},
		},
		{
			name: "credit only",
			text: "your credit card statement. minimum payment: $25. credit limit $5000",
			want: model.Detection{Type: model.StatementTypeCredit, Confidence: 0.5, IsLikelyStatement: true},
		},
		{
			name: "checking only",
			text: "checking account summary. direct deposit received. overdraft protection",
			want: model.Detection{Type: model.StatementTypeChecking, Confidence: 0.5, IsLikelyStatement: true},
		},
		{
			name: "savings only, all markers",
			text: "savings account. interest earned. annual percentage yield. interest paid. money market. withdrawal limit.",
			want: model.Detection{Type: model.StatementTypeSavings, Confidence: 1, IsLikelyStatement: true},
		},
		{
			name: "uppercase text is normalized",
			text: "CHECKING ACCOUNT",
			want: model.Detection{Type: model.StatementTypeChecking, Confidence: 0.17, IsLikelyStatement: true},
		},
		{
			name: "more distinct markers beat more mentions",
			text: strings.Repeat("overdraft ", 10) + "savings account interest earned",
			want: model.Detection{Type: model.StatementTypeSavings, Confidence: 0.33, IsLikelyStatement: true},
		},
		{
			name: "mention score breaks unique tie",
			text: "debit card debit card debit card savings account",
			want: model.Detection{Type: model.StatementTypeChecking, Confidence: 0.17, IsLikelyStatement: true},
		},
		{
			name: "full tie falls back to credit first",
			text: "credit card and checking account and savings account",
			want: model.Detection{Type: model.StatementTypeCredit, Confidence: 0.17, IsLikelyStatement: true},
		},
		{
			name: "checking beats savings on full tie",
			text: "checking account and savings account",
			want: model.Detection{Type: model.StatementTypeChecking, Confidence: 0.17, IsLikelyStatement: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifier_CoverageBreaksTie(t *testing.T) {
	c := New([]Keywords{
		{Type: model.StatementTypeCredit, Phrases: []string{"alpha", "beta", "gamma", "delta"}},
		{Type: model.StatementTypeChecking, Phrases: []string{"omega", "sigma"}},
	})

	got := c.Classify("alpha omega")
	assert.Equal(t, model.StatementTypeChecking, got.Type)
	assert.Equal(t, 0.5, got.Confidence)
}

func TestClassifier_CountsNonOverlappingMentions(t *testing.T) {
	c := New([]Keywords{
		{Type: model.StatementTypeCredit, Phrases: []string{"aa"}},
		{Type: model.StatementTypeChecking, Phrases: []string{"b"}},
	})

	// "aaaa" holds two non-overlapping "aa"; "bbb" holds three "b".
	got := c.Classify("aaaa bbb")
	assert.Equal(t, model.StatementTypeChecking, got.Type)
}

func TestClassifier_Deterministic(t *testing.T) {
	c := Default()

	property := func(s string) bool {
		return c.Classify(s) == c.Classify(s)
	}
	assert.NoError(t, quick.Check(property, nil))

	bounded := func(s string) bool {
		d := c.Classify(s)
		if d.Type == model.StatementTypeUnknown {
			return d.Confidence == 0 && !d.IsLikelyStatement
		}
		return d.Confidence > 0 && d.Confidence <= 1 && d.IsLikelyStatement
	}
	assert.NoError(t, quick.Check(bounded, nil))
}
