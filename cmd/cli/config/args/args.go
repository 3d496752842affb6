package args

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lucax88x/ordklocka/cmd/cli/config/settings"
	"github.com/lucax88x/ordklocka/internal/fifo"
)

const (
	UpdatePrefix = "update"
	argsPrefix   = "args: "
	infoPrefix   = "info:"
)

// https://felixkratz.github.io/SketchyBar/config/events
type In struct {
	// the item name
	Name string `json:"name"`
	// the event
	Event    string `json:"event"`
	Info     string `json:"info"`
	Button   string `json:"button"`
	Modifier string `json:"modifier"`
}

// $INFO is a json, and its not easy to embed a json inside a json
type Out struct {
	Name     string `json:"name"`
	Event    string `json:"event"`
	Button   string `json:"button"`
	Modifier string `json:"modifier"`
}

// FromEvent parses `update args: {json} info: <info>` as written by BuildEvent.
func FromEvent(msg string) (*In, error) {
	_, payload, found := strings.Cut(msg, argsPrefix)
	if !found {
		return nil, fmt.Errorf("args: could not find args prefix in message: %s", msg)
	}

	argsJSON, infoJSON, _ := strings.Cut(payload, infoPrefix)
	argsJSON = strings.TrimSpace(argsJSON)

	var in *In
	err := json.Unmarshal([]byte(argsJSON), &in)

	if err != nil {
		return nil, fmt.Errorf("args: could not deserialize data: %w. Got: %s", err, argsJSON)
	}

	if in == nil {
		return nil, errors.New("args: deserialized data is nil")
	}

	in.Info = strings.TrimSpace(infoJSON)

	return in, nil
}

// BuildEventTo returns the shell snippet an item runs to forward its event
// to the pipe at path, or to the default pipe when path is empty.
func BuildEventTo(path string) (string, error) {
	if path == "" {
		path = settings.FifoPath
	}

	data := &Out{
		Name:     "$NAME",
		Event:    "$SENDER",
		Button:   "$BUTTON",
		Modifier: "$MODIFIER",
	}

	bytes, err := json.Marshal(data)

	if err != nil {
		return "", fmt.Errorf("args: could not serialize data. %w", err)
	}

	serialized := strings.ReplaceAll(string(bytes), `"`, `\"`)

	return fmt.Sprintf(
		`[ -p %[3]s ] && echo "%[4]s %[5]s%[1]s %[6]s $INFO %[2]c" >> %[3]s`,
		serialized,
		fifo.Separator,
		path,
		UpdatePrefix,
		argsPrefix,
		infoPrefix,
	), nil
}
