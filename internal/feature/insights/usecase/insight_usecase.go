package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	authentity "expensepro_backend/internal/feature/auth/domain/entity"
	"expensepro_backend/internal/feature/insights/domain/entity"
	txentity "expensepro_backend/internal/feature/transactions/domain/entity"
)

var (
	// ErrMissingMessage is returned when the question is empty.
	ErrMissingMessage = errors.New("message is required")

	// ErrAIUnavailable is returned when the model call fails or yields nothing.
	ErrAIUnavailable = errors.New("AI response failed")
)

// systemInstruction constrains the responder to the supplied data and to the
// fixed answer shape.
const systemInstruction = `You are an Indian personal expense analysis assistant.

Rules:
- Use Indian Rupee symbol (` + CurrencyMarker + `) ONLY
- Assume Indian spending patterns
- Do NOT convert currency
- Do NOT add external financial advice
- Answer ONLY from provided transaction data
- If data is insufficient, clearly say so

Formatting rules:
- Use bold for headings and important values
- Use short headings and bullet points
- Keep paragraphs small (mobile friendly)
- Do not use markdown tables, use text tables`

// UserReader is the slice of user persistence the insight service needs.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserReader interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
}

// TransactionReader is the slice of ledger persistence the insight service needs.
type TransactionReader interface {
	ListByUser(ctx context.Context, userID uint, limit int) ([]txentity.Transaction, error)
}

// Analyzer generates a textual answer from a system instruction and a prompt.
type Analyzer interface {
	Analyze(ctx context.Context, system, prompt string) (string, error)
}

// insightUsecase answers natural-language questions about the caller's ledger.
type insightUsecase struct {
	users        UserReader
	transactions TransactionReader
	analyzer     Analyzer
}

// NewInsightUsecase creates a new insightUsecase instance.
func NewInsightUsecase(users UserReader, transactions TransactionReader, analyzer Analyzer) *insightUsecase {
	return &insightUsecase{users: users, transactions: transactions, analyzer: analyzer}
}

// buildPrompt assembles the structured prompt: a non-sensitive profile slice,
// the serialized context entries, the verbatim question and the fixed
// instruction block. Passwords, OTP state and receipt references never enter
// the prompt.
func buildPrompt(user *authentity.User, entries []entity.ContextEntry, question string) (string, error) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize context: %w", err)
	}

	var b strings.Builder
	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&b, "- Name: %s\n", user.Name)
	fmt.Fprintf(&b, "- Email: %s\n", user.Email)
	fmt.Fprintf(&b, "- Joined Date: %s\n\n", user.CreatedAt.Format("Mon Jan 2 2006"))
	fmt.Fprintf(&b, "USER TRANSACTIONS (%s Indian Rupees only):\n%s\n\n", CurrencyMarker, data)
	fmt.Fprintf(&b, "USER QUESTION:\n%s\n\n", question)
	b.WriteString(`RESPONSE FORMAT (STRICT):
1. Short Summary (1-2 lines)
2. Key Observations (bullet points)
3. Spending Breakdown (` + CurrencyMarker + ` values)
4. Practical Insight (based only on data)

IMPORTANT RULES:
- Do NOT mention AI, model, or system
- Do NOT assume missing data
- Do NOT invent values
- Keep response concise and readable
`)
	return b.String(), nil
}

// Answer loads the caller's profile and recent ledger, builds the bounded
// prompt and forwards it to the model. An empty model reply is treated the
// same as a provider failure.
func (u *insightUsecase) Answer(ctx context.Context, userID uint, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrMissingMessage
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}

	txs, err := u.transactions.ListByUser(ctx, userID, ContextLimit)
	if err != nil {
		return "", err
	}
	entries := BuildContext(txs, ContextLimit)

	prompt, err := buildPrompt(user, entries, message)
	if err != nil {
		return "", err
	}

	reply, err := u.analyzer.Analyze(ctx, systemInstruction, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAIUnavailable, err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", ErrAIUnavailable
	}
	return reply, nil
}
