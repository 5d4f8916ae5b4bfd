package classifier

import "github.com/dtroode/statementbox/internal/model"

// defaultKeywords lists marker phrases per statement type, in tie-break priority order.
// Credit outranks checking, which outranks savings, when every other score is equal.
var defaultKeywords = []Keywords{
	{
		Type: model.StatementTypeCredit,
		Phrases: []string{
			"credit card",
			"minimum payment",
			"credit limit",
			"available credit",
			"payment due date",
			"cash advance",
		},
	},
	{
		Type: model.StatementTypeChecking,
		Phrases: []string{
			"checking account",
			"debit card",
			"checks paid",
			"overdraft",
			"direct deposit",
			"atm withdrawal",
		},
	},
	{
		Type: model.StatementTypeSavings,
		Phrases: []string{
			"savings account",
			"interest earned",
			"annual percentage yield",
			"interest paid",
			"money market",
			"withdrawal limit",
		},
	},
}
