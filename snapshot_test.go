package overlay

import (
	stdjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SnapshotTestSuite struct {
	suite.Suite
}

func (suite *SnapshotTestSuite) TestMarshalJSON() {
	c, err := New(Props{
		"n":    Data(1),
		"name": Data("demo"),
		"get":  Op(func() int { return 1 }),
	})
	suite.Nil(err)
	raw, err := stdjson.Marshal(c.Current())
	suite.Nil(err)
	var decoded map[string]any
	suite.Nil(stdjson.Unmarshal(raw, &decoded))
	suite.Equal(1.0, decoded["n"])
	suite.Equal("demo", decoded["name"])
	suite.Equal("func() int", decoded["get"])
}

func (suite *SnapshotTestSuite) TestDataAtMisses() {
	c, err := New(Props{
		"n":   Data(1),
		"get": Op(func() int { return 1 }),
	})
	suite.Nil(err)
	_, ok := DataAt[int](c.Current(), "missing")
	suite.False(ok)
	_, ok = DataAt[int](c.Current(), "get")
	suite.False(ok)
	_, ok = DataAt[string](c.Current(), "n")
	suite.False(ok)
}

func (suite *SnapshotTestSuite) TestValueAccessors() {
	data := Data(7)
	suite.True(data.IsData())
	suite.False(data.IsOperation())
	suite.Equal(7, data.Data())
	suite.Nil(data.Fn())

	op := Op(func() {})
	suite.True(op.IsOperation())
	suite.False(op.IsData())
	suite.Nil(op.Data())
	suite.NotNil(op.Fn())
}

func (suite *SnapshotTestSuite) TestLen() {
	c, err := New(Props{"a": Data(1), "b": Data(2)})
	suite.Nil(err)
	suite.Equal(2, c.Current().Len())
}

func TestSnapshotTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotTestSuite))
}
