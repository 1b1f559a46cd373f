package bt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestIntegration_WorkRechargeAgent drives a small agent whose behavior is
// "work while there is energy, otherwise recharge", exercising selector,
// sequence, condition and leaf interplay across repeated control steps.
func TestIntegration_WorkRechargeAgent(t *testing.T) {
	t.Parallel()

	hasEnergy := NewCondition(func(bb *Blackboard) bool {
		energy, _ := bb.Get("energy").(int)
		return energy > 0
	})
	work := NewLeaf(func(bb *Blackboard) Status {
		energy, _ := bb.Get("energy").(int)
		bb.Set("energy", energy-1)
		worked, _ := bb.Get("worked").(int)
		bb.Set("worked", worked+1)
		return Success
	})
	recharge := NewLeaf(func(bb *Blackboard) Status {
		bb.Set("energy", 3)
		charges, _ := bb.Get("charges").(int)
		bb.Set("charges", charges+1)
		return Success
	})

	tree := NewTree(NewSelector(NewSequence(hasEnergy, work), recharge))
	tree.Blackboard().Set("energy", 1)

	var trace []Status
	for i := 0; i < 6; i++ {
		trace = append(trace, tree.Run())
	}

	require.Equal(t, []Status{
		Running, Success, // work cycle drains the last energy
		Running, Success, // no energy: fallback recharges
		Running, Success, // energy again: back to work
	}, trace)
	require.Equal(t, 2, tree.Blackboard().Get("energy"))
	require.Equal(t, 2, tree.Blackboard().Get("worked"))
	require.Equal(t, 1, tree.Blackboard().Get("charges"))
}

// TestIntegration_DrainUntilEmpty loops a sequence under RepeatUntilFail:
// the loop ends with Success exactly when the guard condition fails.
func TestIntegration_DrainUntilEmpty(t *testing.T) {
	t.Parallel()

	hasEnergy := NewCondition(func(bb *Blackboard) bool {
		energy, _ := bb.Get("energy").(int)
		return energy > 0
	})
	drain := NewLeaf(func(bb *Blackboard) Status {
		energy, _ := bb.Get("energy").(int)
		bb.Set("energy", energy-1)
		return Success
	})

	tree := NewTree(NewRepeatUntilFail(NewSequence(hasEnergy, drain)))
	tree.Blackboard().Set("energy", 2)

	var trace []Status
	for i := 0; i < 5; i++ {
		trace = append(trace, tree.Run())
	}

	require.Equal(t, []Status{Running, Running, Running, Running, Success}, trace)
	require.Equal(t, 0, tree.Blackboard().Get("energy"))
}

// TestIntegration_RepeatedPatrol runs a two-step patrol under a limited
// repeater, checking the cursor and counter state machines compose.
func TestIntegration_RepeatedPatrol(t *testing.T) {
	t.Parallel()

	visit := func(name string) Node {
		return NewLeaf(func(bb *Blackboard) Status {
			route, _ := bb.Get("route").([]string)
			bb.Set("route", append(route, name))
			return Success
		})
	}

	tree := NewTree(NewRepeaterTimes(NewSequence(visit("a"), visit("b")), 2))

	var status Status
	for i := 0; i < 4; i++ {
		status = tree.Run()
		if i < 3 {
			require.Equal(t, Running, status)
		}
	}
	require.Equal(t, Success, status)
	require.Equal(t, []string{"a", "b", "a", "b"}, tree.Blackboard().Get("route"))
}
