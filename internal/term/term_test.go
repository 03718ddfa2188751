package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOrderingIsTotal(t *testing.T) {
	assert.True(t, Eraser.Less(Duplicator))
	assert.True(t, Duplicator.Less(Constructor))
	assert.True(t, Constructor.Less(Dynamic(0)))
	assert.False(t, Constructor.Less(Eraser))
}

func TestDynamicKindsCompareByTag(t *testing.T) {
	assert.True(t, Dynamic(1).Less(Dynamic(2)))
	assert.False(t, Dynamic(2).Less(Dynamic(1)))
	assert.Equal(t, Dynamic(7), Dynamic(7))
}

func TestTermEqualityIsByID(t *testing.T) {
	a := FromAgent(NewEraser(1))
	b := FromPort(NewPort(1))
	c := FromPort(NewPort(2))

	assert.True(t, a.Equal(b), "two terms sharing an id must compare equal regardless of tag")
	assert.False(t, a.Equal(c))
}

func TestAgentPortsMatchArity(t *testing.T) {
	eraser := NewEraser(0)
	assert.Len(t, eraser.Ports, 0)

	ctr := NewConstructor(1, NewPortTerm(10), NewPortTerm(11))
	assert.Len(t, ctr.Ports, 2)
}

func TestDebugRendering(t *testing.T) {
	assert.Equal(t, "p_5", NewPort(5).String())
	assert.Equal(t, "p<5,out>", NewNamedPort(5, "out").String())

	ctr := NewConstructor(2, NewPortTerm(0), NewPortTerm(1))
	assert.Equal(t, "Constructor_2(p_0, p_1)", ctr.String())

	named := NewEraser(3)
	named.Name = "trash"
	assert.Equal(t, "Eraser_trash()", named.String())
}
