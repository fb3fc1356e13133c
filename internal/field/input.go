package field

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/formkit/internal/logger"
)

// EventKind names the interaction that produced an Event.
type EventKind string

const (
	EventChange EventKind = "change"
	EventFocus  EventKind = "focus"
	EventBlur   EventKind = "blur"
	EventLimit  EventKind = "limit"
)

// Event is handed to caller callbacks. For change events Raw is the edit as
// received, before masking, and Value is what was stored.
type Event struct {
	Kind     EventKind
	FieldID  string
	Raw      string
	Value    string
	Previous string
}

// Options configures an Input. Every field is optional.
type Options struct {
	ID string
	// InitialValue may be a string or any integer or float type; numbers
	// are stored as their string form.
	InitialValue any
	Baseline     VisualState
	Variant      Variant
	// ValidationMessage is displayed until the first validated edit.
	ValidationMessage string

	CharacterLimit int
	Mask           MaskFunc
	OnValidate     ValidateFunc

	OnChange func(Event)
	OnFocus  func(Event)
	OnBlur   func(Event)
	// OnLimit fires when an edit is rejected by CharacterLimit. Without it
	// rejections are silent.
	OnLimit func(Event)

	Decoration Decoration
	Clearable  bool

	Logger *logger.Logger
}

// Decoration holds the presentational slots around the input row.
type Decoration struct {
	Label          string
	Placeholder    string
	HelpText       string
	Icon           string
	Prefix         string
	Suffix         string
	FileUploadText string
}

// Input is one control: it owns a State and routes transitions through the
// caller's callbacks. Input is not safe for concurrent use; it is driven
// from a single event loop.
type Input struct {
	id    string
	state State
	rules Rules
	opts  Options
	log   *logger.Logger
}

// New constructs an Input from opts.
func New(opts Options) *Input {
	id := opts.ID
	if id == "" {
		id = "field-" + uuid.NewString()[:8]
	}
	in := &Input{
		id:    id,
		state: NewState(Stringify(opts.InitialValue), opts.Baseline, opts.ValidationMessage),
		rules: Rules{
			CharacterLimit: opts.CharacterLimit,
			Mask:           opts.Mask,
			Validate:       opts.OnValidate,
		},
		opts: opts,
	}
	if opts.Logger != nil {
		in.log = opts.Logger.With("field_id", id)
	}
	return in
}

// Stringify converts an initial value to its stored string form.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", x)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// ID is the control identifier used to link help and validation text.
func (in *Input) ID() string { return in.id }

// State returns a copy of the current state.
func (in *Input) State() State { return in.state }

// Value returns the stored value.
func (in *Input) Value() string { return in.state.Value }

// Visual returns the displayed visual state.
func (in *Input) Visual() VisualState { return in.state.Visual }

// Message returns the validation message on display.
func (in *Input) Message() string { return in.state.Message }

// Focused reports whether the control holds focus.
func (in *Input) Focused() bool { return in.state.Focused }

// Options returns the construction options.
func (in *Input) Options() Options { return in.opts }

// Edit applies raw input and reports whether the value was committed.
func (in *Input) Edit(raw string) bool {
	prev := in.state.Value
	next, outcome := in.state.Edit(in.rules, raw)
	switch outcome {
	case Applied:
		in.state = next
		in.fire(in.opts.OnChange, Event{Kind: EventChange, Raw: raw, Value: next.Value, Previous: prev})
		return true
	case OverLimit:
		in.log.DebugFields("edit rejected", map[string]any{"reason": "character_limit", "limit": in.rules.CharacterLimit})
		in.fire(in.opts.OnLimit, Event{Kind: EventLimit, Raw: raw, Value: prev, Previous: prev})
	default:
		in.logGated("edit", outcome)
	}
	return false
}

// Focus moves the control into focus.
func (in *Input) Focus() bool {
	next, outcome := in.state.Focus()
	if outcome != Applied {
		in.logGated("focus", outcome)
		return false
	}
	in.state = next
	in.fire(in.opts.OnFocus, Event{Kind: EventFocus, Value: next.Value, Previous: next.Value})
	return true
}

// Blur takes focus away and restores the baseline state.
func (in *Input) Blur() bool {
	next, outcome := in.state.Blur()
	if outcome != Applied {
		in.logGated("blur", outcome)
		return false
	}
	in.state = next
	in.fire(in.opts.OnBlur, Event{Kind: EventBlur, Value: next.Value, Previous: next.Value})
	return true
}

// Clear empties the value when the clear affordance is enabled, then
// refocuses the control. No change event fires, and a focus event fires
// only when the control did not already have focus.
func (in *Input) Clear() bool {
	if !in.opts.Clearable {
		return false
	}
	wasFocused := in.state.Focused
	next, outcome := in.state.Clear()
	if outcome != Applied {
		in.logGated("clear", outcome)
		return false
	}
	in.state = next
	if !wasFocused {
		in.fire(in.opts.OnFocus, Event{Kind: EventFocus, Value: next.Value, Previous: next.Value})
	}
	return true
}

// Sync pushes a new caller baseline and validation message.
func (in *Input) Sync(baseline VisualState, message string) {
	in.state = in.state.Sync(baseline, message)
}

// CharacterCount returns the current length and the limit; ok is false when
// no limit is configured.
func (in *Input) CharacterCount() (n, limit int, ok bool) {
	if in.rules.CharacterLimit <= 0 {
		return 0, 0, false
	}
	return Length(in.state.Value), in.rules.CharacterLimit, true
}

// CountLabel renders the character count as "n/limit", or "" without a limit.
func (in *Input) CountLabel() string {
	n, limit, ok := in.CharacterCount()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d/%d", n, limit)
}

func (in *Input) fire(cb func(Event), ev Event) {
	if cb == nil {
		return
	}
	ev.FieldID = in.id
	cb(ev)
}

func (in *Input) logGated(op string, outcome Outcome) {
	in.log.DebugFields(op+" ignored", map[string]any{"reason": outcome.String(), "state": in.state.Visual.String()})
}
