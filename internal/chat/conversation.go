// Package chat implements the tutoring conversation: an immutable message
// log with at most one reply in flight.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jusmind/jusmind/internal/generation"
	"github.com/jusmind/jusmind/internal/llm"
)

var (
	// ErrEmptyInput is returned by Submit for blank text.
	ErrEmptyInput = errors.New("chat: empty input")

	// ErrAwaiting is returned by Submit while a reply is in flight.
	ErrAwaiting = errors.New("chat: awaiting reply")
)

const (
	Greeting = "Olá! Sou o JusMind, seu tutor jurídico pessoal. Posso explicar conceitos doutrinários, analisar casos práticos ou guiá-lo em modo socrático. Qual tema do Direito vamos estudar hoje?"

	ResetGreeting = "Conversa reiniciada. Em que tema jurídico posso ajudar agora?"

	FailureText = "⚠️ Houve um erro na conexão com o Tutor. Verifique sua internet ou tente novamente mais tarde."
)

// DefaultMaxHistory caps the prior messages sent with each turn.
const DefaultMaxHistory = 20

// Mode selects how the tutor answers.
type Mode string

const (
	ModeResolver Mode = "resolver"
	ModeSocratic Mode = "socratic"
)

// ParseMode accepts the mode names and their Portuguese labels.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "resolver", "doutrinador":
		return ModeResolver, nil
	case "socratic", "socratico", "socrático":
		return ModeSocratic, nil
	default:
		return "", fmt.Errorf("unknown chat mode %q (want resolver or socratic)", s)
	}
}

// Label returns the display name of the mode.
func (m Mode) Label() string {
	if m == ModeSocratic {
		return "Socrático"
	}
	return "Doutrinador"
}

// Frame wraps the user's text in the mode instructions.
func Frame(m Mode, text string) string {
	if m == ModeSocratic {
		return fmt.Sprintf("MODO SOCRÁTICO (HERMENÊUTICA): O aluno perguntou: \"%s\". NÃO dê a resposta completa. Faça perguntas que o levem a consultar o Vade Mecum ou raciocinar sobre os princípios. Se ele errar, corrija indicando o artigo de lei correto.", text)
	}
	return fmt.Sprintf("MODO DOUTRINADOR: O aluno perguntou: \"%s\". Forneça a solução completa seguindo a estrutura: Conceito -> Artigos de Lei -> Jurisprudência -> Conclusão.", text)
}

// Replier produces the tutor's reply. generation.Client satisfies it.
type Replier interface {
	Converse(ctx context.Context, history []llm.Message, prompt string) string
}

// Turn is one submitted user message awaiting its reply.
type Turn struct {
	// ID is the id of the pending placeholder.
	ID string

	// Prompt is the mode-framed user text.
	Prompt string

	// History holds the prior turns, oldest first.
	History []llm.Message

	epoch uint64
}

// Option configures a Conversation.
type Option func(*Conversation)

// WithMode sets the initial mode.
func WithMode(m Mode) Option {
	return func(c *Conversation) { c.mode = m }
}

// WithMaxHistory caps the prior messages sent per turn. Values below zero
// are ignored.
func WithMaxHistory(n int) Option {
	return func(c *Conversation) {
		if n >= 0 {
			c.maxHistory = n
		}
	}
}

// WithIDs overrides the message id generator.
func WithIDs(fn func() string) Option {
	return func(c *Conversation) { c.newID = fn }
}

// Conversation is a tutoring session. It is not safe for concurrent use;
// replies produced elsewhere are applied with Resolve.
type Conversation struct {
	log        Log
	mode       Mode
	maxHistory int
	newID      func() string

	// pending is the placeholder id of the turn in flight, "" when idle.
	pending string

	// inflight is the id of the turn whose reply is still outstanding. It
	// survives Reset and is cleared only when that turn's reply arrives.
	inflight string

	// epoch changes on Reset so turns submitted earlier can no longer
	// resolve.
	epoch uint64
}

// New creates a conversation holding the greeting, in resolver mode.
func New(opts ...Option) *Conversation {
	c := &Conversation{
		mode:       ModeResolver,
		maxHistory: DefaultMaxHistory,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = Log{{ID: c.newID(), Role: RoleModel, Text: Greeting}}
	return c
}

// Submit appends the user's message and a pending placeholder and returns
// the turn to send.
func (c *Conversation) Submit(text string) (Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Turn{}, ErrEmptyInput
	}
	if c.pending != "" || c.inflight != "" {
		return Turn{}, ErrAwaiting
	}

	history := c.history()
	placeholder := Message{ID: c.newID(), Role: RoleModel, Pending: true}
	c.log = c.log.
		Append(Message{ID: c.newID(), Role: RoleUser, Text: text}).
		Append(placeholder)
	c.pending = placeholder.ID
	c.inflight = placeholder.ID

	return Turn{
		ID:      placeholder.ID,
		Prompt:  Frame(c.mode, text),
		History: history,
		epoch:   c.epoch,
	}, nil
}

// Resolve replaces the placeholder of t with reply. A failure sentinel or
// blank reply becomes the failure notice. It reports false for a turn that
// is not the one in flight, or one dropped by Reset; the latter still frees
// the conversation for the next Submit.
func (c *Conversation) Resolve(t Turn, reply string) bool {
	if t.ID != "" && t.ID == c.inflight {
		c.inflight = ""
	}
	if c.pending == "" || t.ID != c.pending || t.epoch != c.epoch {
		return false
	}

	failed := generation.IsFailure(reply) || strings.TrimSpace(reply) == ""
	log, ok := c.log.Replace(t.ID, func(m Message) Message {
		m.Pending = false
		m.Failed = failed
		if failed {
			m.Text = FailureText
		} else {
			m.Text = reply
		}
		return m
	})
	if !ok {
		return false
	}
	c.log = log
	c.pending = ""
	return true
}

// Send submits text, blocks on r and resolves the turn, returning the
// tutor's message.
func (c *Conversation) Send(ctx context.Context, r Replier, text string) (Message, error) {
	t, err := c.Submit(text)
	if err != nil {
		return Message{}, err
	}
	c.Resolve(t, r.Converse(ctx, t.History, t.Prompt))
	m, _ := c.log.Find(t.ID)
	return m, nil
}

// SetMode changes the mode of later turns.
func (c *Conversation) SetMode(m Mode) { c.mode = m }

// Mode returns the current mode.
func (c *Conversation) Mode() Mode { return c.mode }

// Reset clears the log to the reset greeting and returns to resolver mode.
// A turn in flight is dropped from the log, but Submit keeps returning
// ErrAwaiting until its reply has been passed to Resolve.
func (c *Conversation) Reset() {
	c.epoch++
	c.pending = ""
	c.mode = ModeResolver
	c.log = Log{{ID: c.newID(), Role: RoleModel, Text: ResetGreeting}}
}

// Messages returns the current log.
func (c *Conversation) Messages() Log { return c.log }

// Awaiting reports whether a reply is in flight, including one dropped by
// Reset.
func (c *Conversation) Awaiting() bool { return c.inflight != "" }

// history returns the resolved, non-failed messages after the first user
// message, keeping the newest maxHistory and starting on a user turn.
func (c *Conversation) history() []llm.Message {
	start := -1
	for i, m := range c.log {
		if m.Role == RoleUser {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	var out []llm.Message
	for _, m := range c.log[start:] {
		if m.Pending || m.Failed {
			continue
		}
		role := llm.RoleUser
		if m.Role == RoleModel {
			role = llm.RoleAssistant
		}
		out = append(out, llm.Message{Role: role, Content: m.Text})
	}

	if len(out) > c.maxHistory {
		out = out[len(out)-c.maxHistory:]
	}
	for len(out) > 0 && out[0].Role != llm.RoleUser {
		out = out[1:]
	}
	return out
}
