package main

import (
	"fmt"

	"github.com/KasperOmsK/adtfn/robot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type robotFlags struct {
	name   string
	weapon string
	ammo   int
	model  string
	blunt  bool
	color  string
}

func newRobotCmd(a *app) *cobra.Command {
	var f robotFlags
	cmd := &cobra.Command{
		Use:   "robot",
		Short: "Assemble a giant robot and check whether it can fight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := f.build()
			if err != nil {
				return err
			}
			a.logger.Debug("Robot assembled", zap.Stringer("id", r.ID), zap.String("weapon", r.Weapon.Variant()))

			fight, err := robot.CanFight(r)
			if err != nil {
				return err
			}
			hex, err := robot.FormatHex(r.Arms.Color)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, r)
			fmt.Fprintf(out, "paint: %s %s\n", r.Arms.Color.Variant(), hex)
			fmt.Fprintf(out, "can fight: %t\n", fight)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.name, "name", "Gipsy Danger", "Robot name")
	cmd.Flags().StringVar(&f.weapon, "weapon", "rifle", "Weapon: rifle or knife")
	cmd.Flags().IntVar(&f.ammo, "ammo", 10, "Rifle ammunition")
	cmd.Flags().StringVar(&f.model, "model", "Smart gun.", "Rifle model")
	cmd.Flags().BoolVar(&f.blunt, "blunt", false, "Whether the knife is blunt")
	cmd.Flags().StringVar(&f.color, "color", "SkyBlue", "Paint: SkyBlue, PastelRed or White")
	return cmd
}

func (f robotFlags) build() (robot.GiantRobot, error) {
	color, err := robot.ParseColor(f.color)
	if err != nil {
		return robot.GiantRobot{}, err
	}

	var limb []robot.Coordinate
	for _, xyz := range [][3]float64{{0, 0, 0}, {0, 0, 1}, {0, 0, 2}} {
		c, err := robot.NewCoordinate(xyz[0], xyz[1], xyz[2])
		if err != nil {
			return robot.GiantRobot{}, err
		}
		limb = append(limb, c)
	}

	var weapon robot.Weapon
	switch f.weapon {
	case "rifle":
		weapon, err = robot.NewRifle(f.ammo, f.model)
	case "knife":
		weapon, err = robot.NewKnife(limb, f.blunt)
	default:
		return robot.GiantRobot{}, fmt.Errorf("unknown weapon %q", f.weapon)
	}
	if err != nil {
		return robot.GiantRobot{}, err
	}

	return robot.New(f.name, weapon,
		robot.Legs{Left: limb, Right: limb, Color: color},
		robot.Arms{Left: limb, Right: limb, Color: color},
	)
}
