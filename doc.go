/*
Package bt implements a small behavior-tree execution engine.

A behavior tree composes leaf behaviors (arbitrary application callbacks)
under decorator and composite nodes, and is re-evaluated once per control
step by ticking its root. Every tick of a node produces one of three
statuses: Running, Success, or Failure. Running means the node has work
left and must be ticked again; any other status completes the node's
current attempt and resets it for a fresh start.

# Node lifecycle

Every node shares one lifecycle: the first tick of a fresh attempt runs the
node's init hook, then the node's own logic runs. While the logic keeps
returning Running the node stays mid-attempt and retains its internal state
(composite cursors, repeat counters). The attempt ends exactly when the
logic returns Success or Failure, at which point the node resets so the
next tick begins a new attempt with a new init call.

# Blackboard

All nodes in one tree share a single Blackboard, a key-value store passed
down the tree on every tick. Leaf callbacks receive only the blackboard;
they cannot reach tree-internal bookkeeping. A Tree embedded as a subtree
under another tree forwards its parent's blackboard to its own child
rather than substituting its own, so the whole composed tree observes one
shared state.

# Ticking

The engine does not decide when ticks happen. The host application calls
Tree.Run once per control step; one call is one synchronous top-to-bottom
pass. A single caller must drive a given tree serially. The Blackboard is
internally synchronized because an AsyncLeaf worker may touch it from its
own goroutine while a later tick is in progress.

# Node kinds

  - NewLeaf / NewLeafInit / NewCondition: childless behavior nodes.
  - NewInverter, NewSucceeder, NewRepeater, NewRepeaterTimes,
    NewRepeatUntilFail: single-child decorators.
  - NewSequence, NewSelector: ordered multi-child composites with a
    resumable cursor.
  - NewAsyncLeaf: a leaf whose callback runs on its own goroutine and is
    polled across ticks.
  - NewTree: the root handle, owning a persistent Blackboard.

Subpackages btexpr and btlua provide condition leaves compiled from
expr-lang expressions and leaf behaviors scripted in Lua.
*/
package bt
