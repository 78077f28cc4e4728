package interp

import (
	"bytes"
	"strings"
	"testing"

	"litavm/asm"
)

func runProgram(t *testing.T, ramSize, stackSize int, source string) (string, error) {
	t.Helper()
	vm, err := New(ramSize, stackSize)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var out bytes.Buffer
	vm.Out = &out

	code, err := asm.Compile(source, vm.RAM, vm.CPU)
	if err != nil {
		return "", err
	}

	err = vm.Execute(code)
	return out.String(), err
}

func TestScenarioStringPrintLoop(t *testing.T) {
	source := `.text "Test"
ldca $a .text
pushi $a
call :print_string
jmp :exit
:print_string
  popi $a
:print_loop
  ifb &$a #0
  jmp :print_end_loop
  printc &$a
  addi $a #1
  jmp :print_loop
:print_end_loop
  ret
:exit
`
	out, err := runProgram(t, 1024, 256, source)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "Test" {
		t.Errorf("stdout = %q, want %q", out, "Test")
	}
}

func TestScenarioArithmeticPrint(t *testing.T) {
	out, err := runProgram(t, 256, 64, "printi #11\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "11" {
		t.Errorf("stdout = %q, want %q", out, "11")
	}
}

func TestScenarioImmediateHex(t *testing.T) {
	source := ".k 0xFF\nldci $a .k\nprinti $a\n"
	out, err := runProgram(t, 256, 64, source)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "255" {
		t.Errorf("stdout = %q, want %q", out, "255")
	}
}

func TestScenarioDivideByZero(t *testing.T) {
	source := "movi $a #0\ndivi $b $a\n"
	_, err := runProgram(t, 256, 64, source)
	if err == nil {
		t.Fatal("expected divide-by-zero error, got nil")
	}
	if !strings.Contains(err.Error(), "DivideByZero") {
		t.Errorf("error = %q, want it to contain %q", err.Error(), "DivideByZero")
	}
}

func TestScenarioBoundsViolation(t *testing.T) {
	source := `.s "hello_world_exceeds"
ldca $a .s
`
	_, err := runProgram(t, 16, 8, source)
	if err == nil {
		t.Fatal("expected access-violation error, got nil")
	}
	if !strings.Contains(err.Error(), "Access violation") {
		t.Errorf("error = %q, want it to contain %q", err.Error(), "Access violation")
	}
}

func TestScenarioConditionalSkip(t *testing.T) {
	source := ".z 0\nmovi $a #5\nmovi $b #3\nifi $a $b\nprinti #1\nprinti #2\n"
	out, err := runProgram(t, 256, 64, source)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "2" {
		t.Errorf("stdout = %q, want %q", out, "2")
	}
}
