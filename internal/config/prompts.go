package config

// Built-in prompt templates, used when config.toml leaves a slot empty.
// Each is a fmt.Sprintf template; the analyzer docs state what fills the
// verbs.

// DefaultReceiptPrompt classifies a receipt. Verbs: receipt name, total
// amount, line items (one per line as "name (price)").
const DefaultReceiptPrompt = `You are the bookkeeping assistant of a housing committee.
A committee member uploaded a receipt named "%s" with total %.2f EUR.
Line items:
%s

Classify the purchase. Respond with ONLY a JSON object:
{
  "category": "<one of: maintenance, tools, events, office, cleaning, other>",
  "personal": <true if this looks like a personal purchase rather than a committee expense>,
  "items": [
    {"name": "<line item name>", "price": <number>, "durable": <true for tools, furniture or electronics that belong in the inventory; false for consumables>}
  ],
  "reasoning": "<one short sentence>"
}`

// DefaultReimbursementPrompt judges whether a reimbursement request implies a
// treasury transaction. Verbs: description, amount.
const DefaultReimbursementPrompt = `You are the bookkeeping assistant of a housing committee.
A member requested reimbursement: "%s" for %.2f EUR.

Decide whether this request describes a real committee expense that should
become a treasury transaction. Respond with ONLY a JSON object:
{
  "create_transaction": <true or false>,
  "category": "<one of: maintenance, tools, events, office, cleaning, other>",
  "reasoning": "<one short sentence>"
}`

// DefaultBudgetMatchPrompt matches an expense description against the fund
// budgets of the year. Verbs: description, newline-separated budget names.
const DefaultBudgetMatchPrompt = `Match this housing committee expense against the year's fund budgets.
Expense: "%s"
Budgets:
%s

Respond with ONLY a JSON object:
{"budget": "<exact budget name, or empty string if none fits>"}`

// DefaultMinutesPrompt mines meeting minutes for publishable content.
// Verb: the minute's free text content.
const DefaultMinutesPrompt = `You read the meeting minutes of a housing committee and propose
resident-facing content. Minutes:

%s

Respond with ONLY a JSON object:
{
  "news": [
    {"title": "<headline>", "content": "<two or three sentences for residents>", "confidence": <0..1>}
  ],
  "faqs": [
    {"question": "<question a resident might ask>", "answer": "<answer from the minutes>", "confidence": <0..1>}
  ]
}
Propose only items the minutes clearly support. Empty lists are fine.`
