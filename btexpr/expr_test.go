package btexpr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fennwick/bt"
)

func TestCondition_EvaluatesAgainstBlackboard(t *testing.T) {
	t.Parallel()

	cond, err := Condition(`health > 20 && !stunned`)
	require.NoError(t, err)

	bb := new(bt.Blackboard)
	bb.Set("health", 50)
	bb.Set("stunned", false)
	require.Equal(t, bt.Success, cond.Tick(bb))

	bb.Set("health", 10)
	require.Equal(t, bt.Failure, cond.Tick(bb))
}

func TestCondition_UnknownKeyIsFalse(t *testing.T) {
	t.Parallel()

	cond, err := Condition(`ready == true`)
	require.NoError(t, err)

	// Nothing written yet: the identifier resolves to nil, not an error.
	require.Equal(t, bt.Failure, cond.Tick(new(bt.Blackboard)))

	bb := new(bt.Blackboard)
	bb.Set("ready", true)
	require.Equal(t, bt.Success, cond.Tick(bb))
}

func TestCondition_CompileError(t *testing.T) {
	t.Parallel()

	_, err := Condition(`health >`)
	require.Error(t, err)
	require.ErrorContains(t, err, "btexpr: compile")
}

func TestCondition_NonBooleanRejectedAtCompile(t *testing.T) {
	t.Parallel()

	_, err := Condition(`1 + 1`)
	require.Error(t, err)
}

func TestMustCondition(t *testing.T) {
	t.Parallel()

	require.NotNil(t, MustCondition(`true`))
	require.Panics(t, func() { MustCondition(`health >`) })
}

func TestCondition_InsideTree(t *testing.T) {
	t.Parallel()

	tree := bt.NewTree(bt.NewSelector(
		bt.NewSequence(
			MustCondition(`fuel > 0`),
			bt.NewLeaf(func(bb *bt.Blackboard) bt.Status {
				fuel, _ := bb.Get("fuel").(int)
				bb.Set("fuel", fuel-1)
				return bt.Success
			}),
		),
		bt.NewLeaf(func(bb *bt.Blackboard) bt.Status {
			bb.Set("fuel", 2)
			return bt.Success
		}),
	))
	tree.Blackboard().Set("fuel", 1)

	require.Equal(t, bt.Running, tree.Run()) // guard passes
	require.Equal(t, bt.Success, tree.Run()) // burn the last fuel
	require.Equal(t, bt.Running, tree.Run()) // guard fails, fall back
	require.Equal(t, bt.Success, tree.Run()) // refuel
	require.Equal(t, 2, tree.Blackboard().Get("fuel"))
}
