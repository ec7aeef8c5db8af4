package terrain

import (
	"fmt"
	"strconv"

	"islegen/internal/core"
)

// Parameters describes the configuration as grouped key/value pairs.
func (c Config) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				int64Param("seed", "Seed", c.Seed),
				stringParam("render", "Render", string(c.Render)),
			},
		},
	}

	elevation := core.ParameterGroup{
		Name:    "Elevation",
		Summary: fmt.Sprintf("%d layers", len(c.Elevation.Layers)),
		Params:  []core.Parameter{boolParam("contrast", "Contrast", c.Elevation.Contrast)},
	}
	for i, l := range c.Elevation.Layers {
		elevation.Params = append(elevation.Params, layerParams(fmt.Sprintf("layer%d", i), fmt.Sprintf("Layer %d", i), l)...)
	}
	groups = append(groups, elevation)

	groups = append(groups, core.ParameterGroup{
		Name: "Island",
		Params: []core.Parameter{
			boolParam("island", "Enabled", c.Island.Enabled),
			floatParam("falloff", "Falloff width", c.Falloff()),
		},
	})

	trees := core.ParameterGroup{Name: "Trees", Summary: "disabled"}
	if c.Trees != nil {
		trees.Summary = ""
		trees.Params = layerParams("tree", "Tree", *c.Trees)
	}
	groups = append(groups, trees)

	resources := core.ParameterGroup{Name: "Resources", Summary: fmt.Sprintf("%d deposits", len(c.Resources))}
	for _, r := range c.Resources {
		resources.Params = append(resources.Params,
			stringParam(r.Name+"_color", r.Name+" color", r.Color),
			intParam(r.Name+"_min_distance", r.Name+" min distance", r.MinDistance),
			floatParam(r.Name+"_min_value", r.Name+" min value", r.MinValue),
		)
		resources.Params = append(resources.Params, layerParams(r.Name, r.Name, r.Layer)...)
	}
	groups = append(groups, resources)

	return core.ParameterSnapshot{Groups: groups}
}

func layerParams(key, label string, l Layer) []core.Parameter {
	params := []core.Parameter{
		stringParam(key+"_kind", label+" kind", string(l.Kind)),
		intParam(key+"_grid", label+" grid size", l.GridSize),
		floatParam(key+"_scale", label+" scale", l.Scale),
	}
	if l.Weight != 0 {
		params = append(params, floatParam(key+"_weight", label+" weight", l.Weight))
	}
	return params
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
