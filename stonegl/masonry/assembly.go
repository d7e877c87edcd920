package masonry

import (
	"fmt"

	"github.com/chewxy/math32"

	"sevenstone/stonegl"
)

// Assembly orchestrates the full enclosure: for each of the Walls sides it
// tiles Rows×Columns blocks along the wall chord and places one corner
// joint at each wall boundary.
//
// The chord is derived from the apothem and the wall count. Blocks stop
// short of each wall boundary by exactly half a corner module's width, so
// the corner joint owns the boundary seam: no gaps, no double coverage.
type Assembly struct {
	Walls   int
	Rows    int
	Columns int

	Apothem    stonegl.Scalar // center distance to a wall's inner plane
	WallHeight stonegl.Scalar
	BlockDepth stonegl.Scalar

	Colors ColorResolver
}

// NewAssembly returns an assembly with the canonical enclosure dimensions:
// 7 walls of 8 rows × 13 columns.
func NewAssembly(colors ColorResolver) *Assembly {
	return &Assembly{
		Walls:      7,
		Rows:       8,
		Columns:    13,
		Apothem:    20,
		WallHeight: 10,
		BlockDepth: 1,
		Colors:     colors,
	}
}

func (a *Assembly) validate() error {
	if err := checkPositiveCount("wall count", a.Walls); err != nil {
		return err
	}
	if err := checkPositiveCount("row count", a.Rows); err != nil {
		return err
	}
	if err := checkPositiveCount("column count", a.Columns); err != nil {
		return err
	}
	if err := checkPositive("apothem", a.Apothem); err != nil {
		return err
	}
	if err := checkPositive("wall height", a.WallHeight); err != nil {
		return err
	}
	if err := checkPositive("block depth", a.BlockDepth); err != nil {
		return err
	}
	return nil
}

// Build constructs every module of the enclosure around the given center.
// It returns Walls·Rows·Columns block objects followed by Walls corner
// objects, or an error with no objects at all.
func (a *Assembly) Build(center stonegl.Vec3) ([]*stonegl.Object, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	halfStep := math32.Pi / stonegl.Scalar(a.Walls)
	chord := 2 * a.Apothem * math32.Tan(halfStep)
	rowHeight := a.WallHeight / stonegl.Scalar(a.Rows)

	// The corner module's nominal width is one block column; the usable
	// wall span loses half a corner at each boundary.
	cornerWidth := chord / stonegl.Scalar(a.Columns)
	span := chord - cornerWidth
	blockWidth := span / stonegl.Scalar(a.Columns)

	blocks := ModuleBuilder(&BlockBuilder{
		Width:  blockWidth,
		Height: rowHeight,
		Depth:  a.BlockDepth,
		Colors: a.Colors,
	})
	corners := ModuleBuilder(&CornerBuilder{
		Width:  cornerWidth,
		Height: a.WallHeight,
		Depth:  a.BlockDepth,
		Colors: a.Colors,
	})

	objs := make([]*stonegl.Object, 0, a.Walls*a.Rows*a.Columns+a.Walls)

	for wall := 0; wall < a.Walls; wall++ {
		yaw := 2 * halfStep * stonegl.Scalar(wall)
		normal := stonegl.V3(math32.Sin(yaw), 0, math32.Cos(yaw))
		tangent := stonegl.V3(math32.Cos(yaw), 0, -math32.Sin(yaw))
		wallBase := center.Add(normal.Mul(a.Apothem))

		for row := 0; row < a.Rows; row++ {
			y := (stonegl.Scalar(row) + 0.5) * rowHeight
			for col := 0; col < a.Columns; col++ {
				offset := -span/2 + (stonegl.Scalar(col)+0.5)*blockWidth
				pos := wallBase.Add(tangent.Mul(offset))
				pos.Y += y

				obj, err := blocks.Build(Site{
					Position:  pos,
					RotationY: yaw,
					Wall:      wall,
					Row:       row,
					Col:       col,
				})
				if err != nil {
					return nil, fmt.Errorf("wall %d row %d col %d: %w", wall, row, col, err)
				}
				objs = append(objs, obj)
			}
		}
	}

	// The block runs of two adjacent walls end in planes that cross on the
	// vertex bisector at span/(2 sin(pi/walls)) from the center. The
	// corner's tapered sides lie flush in those planes when its inner face
	// sits half the inner width over tan(pi/walls) outward of the crossing.
	cornerInnerHalf := cornerWidth/2 - a.BlockDepth*math32.Tan(halfStep)
	cornerRadius := span/(2*math32.Sin(halfStep)) + cornerInnerHalf/math32.Tan(halfStep)

	for wall := 0; wall < a.Walls; wall++ {
		yaw := 2*halfStep*stonegl.Scalar(wall) + halfStep
		bisector := stonegl.V3(math32.Sin(yaw), 0, math32.Cos(yaw))
		pos := center.Add(bisector.Mul(cornerRadius))
		pos.Y += a.WallHeight / 2

		obj, err := corners.Build(Site{
			Position:  pos,
			RotationY: yaw,
			Wall:      wall,
			Row:       0,
			Col:       -1,
		})
		if err != nil {
			return nil, fmt.Errorf("corner %d: %w", wall, err)
		}
		objs = append(objs, obj)
	}

	return objs, nil
}
