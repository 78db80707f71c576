package prompt

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mathsheet/pkg/model"
)

type stubDriver struct {
	inputs     []string
	selectIdx  []int
	confirm    []bool
	messages   []string
	defaults   []string
	inputPos   int
	selectPos  int
	confirmPos int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	s.messages = append(s.messages, cfg.Message)
	s.defaults = append(s.defaults, cfg.Default)
	val := s.inputs[s.inputPos]
	s.inputPos++
	if val == "" {
		return cfg.Default, nil
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	s.messages = append(s.messages, cfg.Message)
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	s.messages = append(s.messages, cfg.Message)
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	if val < 0 {
		return cfg.DefaultIndex, nil
	}
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.messages = append(s.messages, msg)
	return nil
}

func TestArithmeticPrompts(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{2},
		inputs:    []string{"10*,*", "12", "", "0", "100", "-20", "100"},
	}
	cfg := model.DefaultGenerationConfig()
	operandPattern := "*,*"

	if err := Arithmetic(context.Background(), driver, &cfg, &operandPattern); err != nil {
		t.Fatalf("arithmetic prompts: %v", err)
	}

	want := model.DefaultGenerationConfig()
	want.Category = model.CategoryMixed
	want.Count = 12
	want.NumberMax = 100
	want.ResultMin = -20
	want.ResultMax = 100
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if operandPattern != "10*,*" {
		t.Fatalf("unexpected pattern %q", operandPattern)
	}
	if diff := cmp.Diff([]string{"*,*", "40", "2", "0", "10", "0", "20"}, driver.defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestArithmeticPromptsAskRoundUnitForRoundCategories(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{5},
		inputs:    []string{"", "", "", "", "", "", "", "5"},
	}
	cfg := model.DefaultGenerationConfig()
	operandPattern := "*,*"

	if err := Arithmetic(context.Background(), driver, &cfg, &operandPattern); err != nil {
		t.Fatalf("arithmetic prompts: %v", err)
	}
	if cfg.Category != model.CategoryRoundMixed || cfg.RoundUnit != 5 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if last := driver.messages[len(driver.messages)-1]; last != "Round to multiples of" {
		t.Fatalf("expected round unit prompt, got %q", last)
	}
}

func TestArithmeticPromptsRejectBadPattern(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{-1},
		inputs:    []string{"0*"},
	}
	cfg := model.DefaultGenerationConfig()
	operandPattern := "*,*"

	if err := Arithmetic(context.Background(), driver, &cfg, &operandPattern); err == nil {
		t.Fatalf("expected pattern validation error")
	}
}

func TestSequencePrompts(t *testing.T) {
	driver := &stubDriver{
		inputs:  []string{"5", "", "", "200", "-10", "30", "", "2"},
		confirm: []bool{true},
	}
	cfg := model.DefaultSequenceConfig()

	if err := Sequence(context.Background(), driver, &cfg); err != nil {
		t.Fatalf("sequence prompts: %v", err)
	}

	want := model.DefaultSequenceConfig()
	want.Count = 5
	want.NumberMax = 200
	want.Step = -10
	want.LineWidth = 30
	want.MaxMissingPerGap = 2
	want.StartMultipleOf = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSequencePromptsRejectBelowFloor(t *testing.T) {
	driver := &stubDriver{inputs: []string{"0"}}
	cfg := model.DefaultSequenceConfig()

	if err := Sequence(context.Background(), driver, &cfg); err == nil {
		t.Fatalf("expected count below minimum to fail")
	}
}

func TestParseInt(t *testing.T) {
	if v, err := parseInt(" 42 ", 0); err != nil || v != 42 {
		t.Fatalf("parseInt = %d, %v", v, err)
	}
	if _, err := parseInt("four", 0); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := parseInt("-1", 0); err == nil {
		t.Fatalf("expected floor error")
	}
}

func TestSurveyDriverInfoAndCancelledContext(t *testing.T) {
	var out bytes.Buffer
	d := &surveyDriver{out: &out}
	if err := d.Info(context.Background(), "hello"); err != nil {
		t.Fatalf("info: %v", err)
	}
	if out.String() != "hello\n" {
		t.Fatalf("unexpected info output %q", out.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := d.Input(ctx, InputConfig{Message: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := d.Select(ctx, SelectConfig{Message: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := d.Confirm(ctx, ConfirmConfig{Message: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if !errors.Is(translateSurveyErr(terminal.InterruptErr), ErrAborted) {
		t.Fatalf("expected interrupt to map to ErrAborted")
	}
	other := errors.New("other")
	if translateSurveyErr(other) != other {
		t.Fatalf("expected passthrough")
	}
	if got := stringValidator(func(string) error { return nil })(3); got == nil {
		t.Fatalf("expected non-string answer to fail validation")
	}
}
