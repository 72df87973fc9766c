package test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/overlay-go/overlay"
	"github.com/overlay-go/overlay/config"
	"github.com/overlay-go/overlay/setup"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	k *koanf.Koanf
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.k = koanf.New(".")
	err := suite.k.Load(confmap.Provider(map[string]any{
		"props": map[string]any{
			"n":    1,
			"name": "demo",
		},
		"container": map[string]any{
			"name":   "billing",
			"policy": "arity",
		},
		"broken": map[string]any{
			"policy": "sometimes",
		},
	}, "."), nil)
	suite.Nil(err)
}

func (suite *ConfigTestSuite) TestProps() {
	props, err := config.Props(suite.k, "props")
	suite.Nil(err)
	suite.Len(props, 2)
	suite.Equal(1, props["n"].Data())
	suite.Equal("demo", props["name"].Data())
}

func (suite *ConfigTestSuite) TestPropsMissingSection() {
	_, err := config.Props(suite.k, "nope")
	suite.NotNil(err)
}

func (suite *ConfigTestSuite) TestLoadSettings() {
	settings, err := config.Load(suite.k, "container")
	suite.Nil(err)
	suite.Equal("billing", settings.Name)
	suite.Equal("arity", settings.Policy)
	options, err := settings.Options()
	suite.Nil(err)
	suite.Len(options, 2)
}

func (suite *ConfigTestSuite) TestLoadRejectsUnknownPolicy() {
	_, err := config.Load(suite.k, "broken")
	suite.NotNil(err)
	suite.IsType(validator.ValidationErrors{}, err)
}

func (suite *ConfigTestSuite) TestFeature() {
	c, err := setup.New(config.Feature(suite.k,
		config.PropsAt("props"),
		config.SettingsAt("container"),
	)).Build()
	suite.Nil(err)
	suite.Equal("billing", c.Name())
	suite.Equal(overlay.InjectByArity, c.Policy())
	n, ok := overlay.DataAt[int](c.Current(), "n")
	suite.True(ok)
	suite.Equal(1, n)
}

func (suite *ConfigTestSuite) TestFeatureDefaultsToWholeTree() {
	k := koanf.New(".")
	suite.Nil(k.Load(confmap.Provider(map[string]any{
		"n": 5,
	}, "."), nil))
	c, err := setup.New(config.Feature(k)).Build()
	suite.Nil(err)
	n, ok := overlay.DataAt[int](c.Current(), "n")
	suite.True(ok)
	suite.Equal(5, n)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
