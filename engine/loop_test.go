package engine

import (
	"testing"
)

func TestLoop_Order(t *testing.T) {
	rt, err := NewGojaRuntime(&Config{NoShim: true})
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	_, err = rt.Eval(`
		var order = [];
		setTimeout(function () { order.push("t20"); }, 20);
		setTimeout(function () { order.push("t0a"); }, 0);
		setTimeout(function () {
			order.push("t0b");
			queueMicrotask(function () { order.push("m2"); });
			setTimeout(function () { order.push("t0c"); }, 0);
		});
		queueMicrotask(function () { order.push("m1"); });
		var cancelled = setTimeout(function () { order.push("never"); }, 5);
		clearTimeout(cancelled);
	`)
	if err != nil {
		t.Fatal(err)
	}

	if rt.Pending() != 4 {
		t.Fatalf("Pending() = %d, want 4", rt.Pending())
	}
	if n := rt.RunPending(); n != 6 {
		t.Fatalf("RunPending() ran %d tasks, want 6", n)
	}

	v, _ := rt.Eval(`order.join(",")`)
	if got, want := v.String(), "m1,t0a,t0b,m2,t0c,t20"; got != want {
		t.Fatalf("order = %s, want %s", got, want)
	}
}

func TestLoop_TimerArguments(t *testing.T) {
	rt, err := NewGojaRuntime(&Config{NoShim: true})
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	_, err = rt.Eval(`var sum = 0; setTimeout(function (a, b) { sum = a + b; }, 1, 2, 3);`)
	if err != nil {
		t.Fatal(err)
	}
	rt.RunPending()
	v, _ := rt.Eval(`sum`)
	if v.Float() != 5 {
		t.Fatalf("sum = %v, want 5", v.Float())
	}
}

func TestLoop_DrainLimit(t *testing.T) {
	rt, err := NewGojaRuntime(&Config{NoShim: true, MaxTasks: 10})
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	_, err = rt.Eval(`function again() { setTimeout(again, 1); } again();`)
	if err != nil {
		t.Fatal(err)
	}
	if n := rt.RunPending(); n != 10 {
		t.Fatalf("RunPending() = %d, want 10", n)
	}
	if rt.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", rt.Pending())
	}
}

func TestLoop_TaskExceptionDoesNotStopDrain(t *testing.T) {
	rt, err := NewGojaRuntime(&Config{NoShim: true})
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	_, err = rt.Eval(`
		var reached = false;
		setTimeout(function () { throw new Error("x"); }, 0);
		setTimeout(function () { reached = true; }, 0);
	`)
	if err != nil {
		t.Fatal(err)
	}
	rt.RunPending()
	v, _ := rt.Eval(`reached`)
	if !v.Bool() {
		t.Fatal("second task did not run")
	}
}
