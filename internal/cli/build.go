package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgeo/construct"
	"github.com/katalvlaran/lvgeo/geom"
)

// buildFlags collects the per-kind argument flags of circle and sphere.
// Every occurrence of a flag is one construction argument.
type buildFlags struct {
	points     []string
	numbers    []string
	vectors    []string
	planes     []string
	spheres    []string
	circles    []string
	defaultDim int
}

// NewCircleCommand creates the circle command.
func NewCircleCommand(rootOpts *RootOptions) *cobra.Command {
	return newBuildCommand(rootOpts, geom.KindCircle, "Construct circles",
		`Construct circles from the given arguments. The combination of argument kinds
selects the construction:

  3 points                      circumcircle (2D, 3D)
  2 points                      diametral circle (2D)
  point, number, plane          center, squared radius, supporting plane (3D)
  point, number, vector         center, squared radius, normal (3D)
  point, number                 center, squared radius (2D)
  2 spheres                     intersection circle (3D)
  sphere, plane                 intersection circle (3D)

Elements of one argument are separated by ';', coordinates by ','.
NA is a missing element. Length-1 arguments are recycled.`,
		`  geoc circle --point "0,0;1,1" --number "4;9"
  geoc circle --point 0,0,0 --number 1 --vector 0,0,1`)
}

// NewSphereCommand creates the sphere command.
func NewSphereCommand(rootOpts *RootOptions) *cobra.Command {
	return newBuildCommand(rootOpts, geom.KindSphere, "Construct spheres",
		`Construct spheres from the given arguments (3D only):

  4 points                      circumsphere
  3 points                      smallest sphere through the points
  2 points                      diametral sphere
  point, number                 center, squared radius
  circle                        sphere with the circle as a great circle

Elements of one argument are separated by ';', coordinates by ','.
NA is a missing element. Length-1 arguments are recycled.`,
		`  geoc sphere --point 0,0,0 --point 0,0,4
  geoc sphere --circle 0,0,0,4,0,0,1`)
}

func newBuildCommand(rootOpts *RootOptions, kind geom.Kind, short, long, example string) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:           kind.String(),
		Short:         short,
		Long:          long,
		Example:       example,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(rootOpts, kind, flags, cmd)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.points, "point", "p", nil, "points, e.g. \"0,0;1,1\"")
	cmd.Flags().StringArrayVarP(&flags.numbers, "number", "n", nil, "numbers (squared radii), e.g. \"4;1/4\"")
	cmd.Flags().StringArrayVar(&flags.vectors, "vector", nil, "vectors, e.g. \"0,0,1\"")
	cmd.Flags().StringArrayVar(&flags.planes, "plane", nil, "planes a,b,c,d of ax+by+cz+d=0")
	cmd.Flags().StringArrayVar(&flags.spheres, "sphere", nil, "spheres x,y,z,r2")
	cmd.Flags().StringArrayVar(&flags.circles, "circle", nil, "circles x,y,r2 or x,y,z,r2,nx,ny,nz")
	cmd.Flags().IntVar(&flags.defaultDim, "default-dim", 0, "dimension of an empty result (2 or 3)")

	return cmd
}

func runBuild(opts *RootOptions, kind geom.Kind, flags *buildFlags, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	args, err := flags.arguments()
	if err != nil {
		_ = formatter.Error(err)
		return WrapExitError(ExitCommandError, "parse arguments", err)
	}

	cOpts := opts.constructOptions(cmd)
	if flags.defaultDim != 0 {
		d, err := geom.ParseDim(flags.defaultDim)
		if err != nil {
			_ = formatter.Error(err)
			return WrapExitError(ExitCommandError, "--default-dim", err)
		}
		cOpts = append(cOpts, construct.WithDefaultDim(d))
	}

	v, err := construct.Build(kind, args, cOpts...)
	if err != nil {
		_ = formatter.Error(err)
		return WrapExitError(ExitFailure, "construct "+kind.String(), err)
	}
	return formatter.Vector(NewVectorResult("", v))
}

// arguments parses the flags in kind order, naming each after its flag.
func (f *buildFlags) arguments() ([]any, error) {
	groups := []struct {
		flag  string
		kind  geom.Kind
		texts []string
	}{
		{"--point", geom.KindPoint, f.points},
		{"--number", geom.KindNumber, f.numbers},
		{"--vector", geom.KindVector, f.vectors},
		{"--plane", geom.KindPlane, f.planes},
		{"--sphere", geom.KindSphere, f.spheres},
		{"--circle", geom.KindCircle, f.circles},
	}

	var args []any
	for _, g := range groups {
		for _, text := range g.texts {
			v, err := ParseArgument(g.kind, text)
			if err != nil {
				return nil, err
			}
			args = append(args, construct.Named(g.flag, v))
		}
	}
	return args, nil
}
