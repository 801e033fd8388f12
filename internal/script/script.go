// ABOUTME: YAML step scripts for the eoutput CLI: begin/end/info/warn/error/sleep/progress
// ABOUTME: Each step carries exactly one action key; anything else is rejected with its index

package script

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrUnknownStep is returned for steps with no action, several
// actions, or keys that are not part of any action.
var ErrUnknownStep = errors.New("unknown step")

// ErrProgressInBegin is returned for a progress step placed while a
// begin line is still waiting for its end: the bar would overwrite it.
var ErrProgressInBegin = errors.New("progress inside an open begin line")

// Action names what a step does.
type Action string

const (
	ActionBegin    Action = "begin"
	ActionEnd      Action = "end"
	ActionWarnEnd  Action = "ewend"
	ActionInfo     Action = "info"
	ActionWarn     Action = "warn"
	ActionError    Action = "error"
	ActionSleep    Action = "sleep"
	ActionProgress Action = "progress"
)

var actions = []Action{
	ActionBegin, ActionEnd, ActionWarnEnd, ActionInfo,
	ActionWarn, ActionError, ActionSleep, ActionProgress,
}

// msgKey is the only non-action key, allowed next to end and ewend.
const msgKey = "msg"

// DefaultFrames is how many times an indeterminate progress step
// redraws when frames is not given.
const DefaultFrames = 20

// Progress describes a progress step.
type Progress struct {
	Title     string        `yaml:"title"`
	Label     string        `yaml:"label"`
	Max       int64         `yaml:"max"`
	Step      int64         `yaml:"step"`
	Frames    int           `yaml:"frames"`
	Interval  time.Duration `yaml:"interval"`
	DescWidth int           `yaml:"desc_width"`
}

// Step is one validated script entry.
type Step struct {
	Action   Action
	Text     string
	Status   int
	Sleep    time.Duration
	Progress Progress
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step
}

type rawScript struct {
	Steps []yaml.Node `yaml:"steps"`
}

type rawStep struct {
	Begin    string        `yaml:"begin"`
	End      int           `yaml:"end"`
	WarnEnd  int           `yaml:"ewend"`
	Msg      string        `yaml:"msg"`
	Info     string        `yaml:"info"`
	Warn     string        `yaml:"warn"`
	Error    string        `yaml:"error"`
	Sleep    time.Duration `yaml:"sleep"`
	Progress Progress      `yaml:"progress"`
}

// LoadFile reads and parses a script file.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script from YAML.
func Parse(data []byte) (*Script, error) {
	var raw rawScript
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	s := &Script{Steps: make([]Step, 0, len(raw.Steps))}
	var open bool
	for i := range raw.Steps {
		step, err := parseStep(&raw.Steps[i])
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		switch step.Action {
		case ActionBegin:
			open = true
		case ActionSleep:
		case ActionProgress:
			if open {
				return nil, fmt.Errorf("step %d: %w", i+1, ErrProgressInBegin)
			}
		default:
			// end closes the line; info, warn and error break it.
			open = false
		}
		s.Steps = append(s.Steps, step)
	}
	return s, nil
}

func parseStep(node *yaml.Node) (Step, error) {
	if node.Kind != yaml.MappingNode {
		return Step{}, fmt.Errorf("%w: expected a mapping at line %d", ErrUnknownStep, node.Line)
	}

	var found []Action
	var hasMsg bool
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		switch {
		case key == msgKey:
			hasMsg = true
		case slices.Contains(actions, Action(key)):
			found = append(found, Action(key))
		default:
			return Step{}, fmt.Errorf("%w: %q", ErrUnknownStep, key)
		}
	}
	switch len(found) {
	case 0:
		return Step{}, fmt.Errorf("%w: no action", ErrUnknownStep)
	case 1:
	default:
		names := make([]string, len(found))
		for i, a := range found {
			names[i] = string(a)
		}
		return Step{}, fmt.Errorf("%w: several actions (%s)", ErrUnknownStep, strings.Join(names, ", "))
	}
	action := found[0]
	if hasMsg && action != ActionEnd && action != ActionWarnEnd {
		return Step{}, fmt.Errorf("%w: %q is only valid with end or ewend", ErrUnknownStep, msgKey)
	}

	var raw rawStep
	if err := node.Decode(&raw); err != nil {
		return Step{}, fmt.Errorf("decode %s: %w", action, err)
	}

	step := Step{Action: action}
	switch action {
	case ActionBegin:
		step.Text = raw.Begin
	case ActionEnd:
		step.Status, step.Text = raw.End, raw.Msg
	case ActionWarnEnd:
		step.Status, step.Text = raw.WarnEnd, raw.Msg
	case ActionInfo:
		step.Text = raw.Info
	case ActionWarn:
		step.Text = raw.Warn
	case ActionError:
		step.Text = raw.Error
	case ActionSleep:
		if raw.Sleep < 0 {
			return Step{}, fmt.Errorf("sleep: negative duration %s", raw.Sleep)
		}
		step.Sleep = raw.Sleep
	case ActionProgress:
		p := raw.Progress
		if p.Max < 0 {
			return Step{}, fmt.Errorf("progress: negative max %d", p.Max)
		}
		if p.Step <= 0 {
			p.Step = 1
		}
		if p.Frames <= 0 {
			p.Frames = DefaultFrames
		}
		if p.DescWidth <= 0 {
			p.DescWidth = progressDescWidth
		}
		step.Progress = p
	}
	return step, nil
}
