// Package document describes chat messages as JSON so they can be rendered
// without writing Go: the preview server's render API, its playground and the
// CLI all accept this format.
package document

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// ErrInvalidDocument is returned for documents that cannot be decoded,
// validated or built.
var ErrInvalidDocument = errors.New("invalid document")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Conversation is a list of messages rendered inside one container.
type Conversation struct {
	Compact      bool      `json:"compact,omitempty"`
	LightTheme   bool      `json:"light_theme,omitempty"`
	NoBackground bool      `json:"no_background,omitempty"`
	Messages     []Message `json:"messages" validate:"required,min=1,dive"`
}

// Message is one chat message. Children are routed into the message's
// regions by their slot.
type Message struct {
	Author    string `json:"author,omitempty" validate:"max=80"`
	Avatar    string `json:"avatar,omitempty"`
	Bot       *bool  `json:"bot,omitempty"`
	Edited    bool   `json:"edited,omitempty"`
	Profile   string `json:"profile,omitempty"`
	RoleColor string `json:"role_color,omitempty" validate:"omitempty,hexcolor"`
	// Timestamp accepts anything discord.ParseTimestamp does; empty means now.
	Timestamp string `json:"timestamp,omitempty"`
	// Twemoji defaults to true.
	Twemoji  *bool  `json:"twemoji,omitempty"`
	Children []Node `json:"children,omitempty" validate:"dive"`
}

// Node kinds.
const (
	KindText        = "text"
	KindLineBreak   = "line_break"
	KindMention     = "mention"
	KindButtons     = "buttons"
	KindEmbed       = "embed"
	KindInteraction = "interaction"
	KindReactions   = "reactions"
)

// Node is a piece of message content. Kind decides which of the optional
// fields are read.
type Node struct {
	Kind string `json:"kind" validate:"required,oneof=text line_break mention buttons embed interaction reactions"`
	Slot string `json:"slot,omitempty" validate:"omitempty,oneof=default actions embeds interactions reactions"`

	Text string `json:"text,omitempty"`

	MentionType string `json:"mention_type,omitempty" validate:"omitempty,oneof=user role channel voice"`
	Highlight   bool   `json:"highlight,omitempty"`
	Color       string `json:"color,omitempty" validate:"omitempty,hexcolor"`

	Buttons     []Button     `json:"buttons,omitempty" validate:"required_if=Kind buttons,dive"`
	Reactions   []Reaction   `json:"reactions,omitempty" validate:"required_if=Kind reactions,dive"`
	Embed       *Embed       `json:"embed,omitempty" validate:"required_if=Kind embed"`
	Interaction *Interaction `json:"interaction,omitempty" validate:"required_if=Kind interaction"`
}

// Button is a single button of a buttons node.
type Button struct {
	Label    string `json:"label,omitempty"`
	Type     string `json:"type,omitempty" validate:"omitempty,oneof=primary secondary success destructive link"`
	URL      string `json:"url,omitempty" validate:"omitempty,url"`
	Disabled bool   `json:"disabled,omitempty"`
	Emoji    string `json:"emoji,omitempty"`
	Image    string `json:"image,omitempty" validate:"omitempty,url"`
}

// Reaction is a single reaction of a reactions node.
type Reaction struct {
	Name    string `json:"name" validate:"required"`
	Emoji   string `json:"emoji" validate:"required"`
	Count   int    `json:"count,omitempty" validate:"gte=0"`
	Reacted bool   `json:"reacted,omitempty"`
}

// Embed is the payload of an embed node.
type Embed struct {
	Color       string  `json:"color,omitempty" validate:"omitempty,hexcolor"`
	AuthorName  string  `json:"author_name,omitempty"`
	AuthorImage string  `json:"author_image,omitempty" validate:"omitempty,url"`
	AuthorURL   string  `json:"author_url,omitempty" validate:"omitempty,url"`
	Title       string  `json:"title,omitempty"`
	URL         string  `json:"url,omitempty" validate:"omitempty,url"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields,omitempty" validate:"dive"`
	Image       string  `json:"image,omitempty" validate:"omitempty,url"`
	Thumbnail   string  `json:"thumbnail,omitempty" validate:"omitempty,url"`
	Footer      string  `json:"footer,omitempty"`
	FooterImage string  `json:"footer_image,omitempty" validate:"omitempty,url"`
	Timestamp   string  `json:"timestamp,omitempty"`
}

// Field is an embed field.
type Field struct {
	Title  string `json:"title" validate:"required"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Interaction is the payload of an interaction node.
type Interaction struct {
	Author    string `json:"author,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Profile   string `json:"profile,omitempty"`
	RoleColor string `json:"role_color,omitempty" validate:"omitempty,hexcolor"`
	Command   string `json:"command,omitempty"`
	Text      string `json:"text,omitempty"`
	Edited    bool   `json:"edited,omitempty"`
	Ephemeral bool   `json:"ephemeral,omitempty"`
	Highlight bool   `json:"highlight,omitempty"`
}

// Decode parses and validates a conversation.
func Decode(data []byte) (*Conversation, error) {
	var c Conversation
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the conversation against its field rules.
func (c *Conversation) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}
