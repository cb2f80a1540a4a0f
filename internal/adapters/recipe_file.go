package adapters

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"urf-recipe/internal/ports"
	"urf-recipe/internal/types"
)

// RecipeFileNames are tried in order when a recipe folder is searched.
var RecipeFileNames = []string{"urf-recipe.yaml", "urf-recipe.yml", "urf-recipe.toml"}

type RecipeFileAdapter struct{}

func NewRecipeFileAdapter() RecipeFileAdapter {
	return RecipeFileAdapter{}
}

func (a RecipeFileAdapter) LoadRecipe(path string) (types.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Recipe{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("recipe file not found").
			WithCause(err)
	}
	var recipe types.Recipe
	switch recipeFormat(path) {
	case "toml":
		if _, err := toml.Decode(string(data), &recipe); err != nil {
			return types.Recipe{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse recipe toml").
				WithCause(err)
		}
	default:
		if err := yaml.Unmarshal(data, &recipe); err != nil {
			return types.Recipe{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse recipe yaml").
				WithCause(err)
		}
	}
	return recipe, nil
}

func (a RecipeFileAdapter) WriteRecipe(path string, recipe types.Recipe) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("recipe path is empty")
	}
	var data []byte
	switch recipeFormat(path) {
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(recipe); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode recipe toml").
				WithCause(err)
		}
		data = buf.Bytes()
	default:
		encoded, err := yaml.Marshal(recipe)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode recipe yaml").
				WithCause(err)
		}
		data = encoded
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create recipe directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write recipe %s", path)).
			WithCause(err)
	}
	return nil
}

func (a RecipeFileAdapter) FindRecipe(folder string) string {
	return FindRecipeFile(folder)
}

// FindRecipeFile returns the first recipe file present in folder, or an
// empty string when there is none.
func FindRecipeFile(folder string) string {
	for _, name := range RecipeFileNames {
		path := filepath.Join(folder, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func recipeFormat(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}

var _ ports.RecipePort = RecipeFileAdapter{}
