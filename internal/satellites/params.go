package satellites

import (
	"strconv"

	"satellites/internal/core"
)

// Parameters describes the running configuration for the HUD and the
// headless runner.
func (d *Driver) Parameters() core.ParameterSnapshot {
	c := d.cfg
	itoa := strconv.Itoa
	ftoa := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Physics",
			Params: []core.Parameter{
				{Key: "bodies", Label: "Bodies", Type: core.ParamTypeInt, Value: itoa(c.Bodies)},
				{Key: "gravity", Label: "Gravity", Type: core.ParamTypeFloat, Value: ftoa(c.Params.Gravity)},
				{Key: "frame_interval", Label: "Frame interval (ms)", Type: core.ParamTypeFloat, Value: ftoa(c.Params.FrameInterval)},
				{Key: "substeps", Label: "Sub-steps", Type: core.ParamTypeInt, Value: itoa(c.Params.SubSteps)},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(d.seed, 10)},
			},
		},
		{
			Name: "Render",
			Params: []core.Parameter{
				{Key: "backend", Label: "Backend", Type: core.ParamTypeString, Value: d.shader.Name()},
				{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Value: itoa(c.Workers)},
				{Key: "row_band", Label: "Row band", Type: core.ParamTypeInt, Value: itoa(c.RowBand)},
				{Key: "satellite_radius", Label: "Satellite radius", Type: core.ParamTypeFloat, Value: ftoa(float64(c.Params.SatelliteRadius))},
				{Key: "black_hole_radius", Label: "Black hole radius", Type: core.ParamTypeFloat, Value: ftoa(float64(c.Params.BlackHoleRadius))},
			},
		},
		{
			Name: "Check",
			Params: []core.Parameter{
				{Key: "validation_frames", Label: "Validated frames", Type: core.ParamTypeInt, Value: itoa(c.Check.ValidationFrames)},
				{Key: "allowed_error", Label: "Allowed error", Type: core.ParamTypeInt, Value: itoa(c.Check.AllowedError)},
				{Key: "allowed_mismatches", Label: "Allowed mismatches", Type: core.ParamTypeInt, Value: itoa(c.Check.AllowedMismatches)},
			},
		},
	}}
}
