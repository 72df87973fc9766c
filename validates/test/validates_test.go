package test

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/overlay-go/overlay"
	"github.com/overlay-go/overlay/validates"
	"github.com/stretchr/testify/suite"
)

type CreateUser struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

type ValidatesTestSuite struct {
	suite.Suite
	container *overlay.Container
	created   int
}

func (suite *ValidatesTestSuite) SetupTest() {
	suite.created = 0
	c, err := overlay.New(overlay.Props{
		"create": overlay.Op(func(user CreateUser) (string, error) {
			suite.created++
			return user.Name, nil
		}),
	})
	suite.Nil(err)
	suite.Nil(validates.Keys(c, "create"))
	suite.container = c
}

func (suite *ValidatesTestSuite) TestValidArgumentDelegates() {
	out, err := suite.container.Current().Call("create", CreateUser{
		Name:  "Ada",
		Email: "ada@example.com",
	})
	suite.Nil(err)
	suite.Equal("Ada", out[0])
	suite.Equal(1, suite.created)
}

func (suite *ValidatesTestSuite) TestInvalidArgumentStopsChain() {
	_, err := suite.container.Current().Call("create", CreateUser{
		Name: "Ada",
	})
	suite.NotNil(err)
	var verrs validator.ValidationErrors
	suite.True(errors.As(err, &verrs))
	suite.Equal(0, suite.created)
}

func (suite *ValidatesTestSuite) TestPointerArgumentValidated() {
	c, err := overlay.New(overlay.Props{
		"create": overlay.Op(func(user *CreateUser) (string, error) {
			return user.Name, nil
		}),
	})
	suite.Nil(err)
	suite.Nil(validates.Keys(c, "create"))
	_, err = c.Current().Call("create", &CreateUser{Name: "Ada"})
	var verrs validator.ValidationErrors
	suite.True(errors.As(err, &verrs))
}

func (suite *ValidatesTestSuite) TestNonStructArgumentsPass() {
	c, err := overlay.New(overlay.Props{
		"add": overlay.Op(func(a, b int) (int, error) { return a + b, nil }),
	})
	suite.Nil(err)
	suite.Nil(validates.Keys(c, "add"))
	out, err := c.Current().Call("add", 1, 2)
	suite.Nil(err)
	suite.Equal(3, out[0])
}

func (suite *ValidatesTestSuite) TestComposedKeyValidated() {
	c, err := overlay.New(overlay.Props{
		"create": overlay.Op(func(user CreateUser) (string, error) {
			return user.Name, nil
		}),
	})
	suite.Nil(err)
	suite.Nil(c.Update(overlay.Props{
		"create": overlay.Op(func(
			user CreateUser,
			prev *overlay.Previous,
		) (string, error) {
			out, err := prev.Call(user)
			if err != nil {
				return "", err
			}
			return out[0].(string) + "!", nil
		}),
	}))
	suite.Nil(validates.Keys(c, "create"))
	out, err := c.Current().Call("create", CreateUser{
		Name:  "Ada",
		Email: "ada@example.com",
	})
	suite.Nil(err)
	suite.Equal("Ada!", out[0])
	_, err = c.Current().Call("create", CreateUser{Name: "Ada"})
	var verrs validator.ValidationErrors
	suite.True(errors.As(err, &verrs))
}

func (suite *ValidatesTestSuite) TestUnknownKey() {
	c, err := overlay.New(overlay.Props{})
	suite.Nil(err)
	err = validates.Keys(c, "missing")
	var unknown *overlay.UnknownKeyError
	suite.True(errors.As(err, &unknown))
}

func TestValidatesTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatesTestSuite))
}
