// Package ix implements the fixed-point integer geometry kernel the edge
// network is built on: 2D/3D points in micrometers, 2D segments, closed
// integer Z intervals, and the 2D orientation/intersection predicates the
// builder and resolver need. Everything here is exact integer arithmetic;
// no floating point is used except where explicitly noted.
package ix

import "fmt"

// Point2 is a 2D position or displacement in integer micrometers.
//
// Fields should be treated as read-only. Use the arithmetic methods to
// derive new values rather than mutating in place.
type Point2 struct {
	X, Y int64
}

func (p Point2) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Add returns the standard vector sum of p and op.
func (p Point2) Add(op Point2) Point2 { return Point2{p.X + op.X, p.Y + op.Y} }

// Sub returns the standard vector difference of p and op.
func (p Point2) Sub(op Point2) Point2 { return Point2{p.X - op.X, p.Y - op.Y} }

// Dot returns the standard dot product of p and op.
func (p Point2) Dot(op Point2) int64 { return p.X*op.X + p.Y*op.Y }

// Cross returns the Z component of the 3D cross product of p and op treated
// as vectors in the XY plane. Positive means op is counter-clockwise from p.
func (p Point2) Cross(op Point2) int64 { return p.X*op.Y - p.Y*op.X }

// Norm2 returns the squared length of p.
func (p Point2) Norm2() int64 { return p.Dot(p) }

// DistSq returns the squared distance between p and op.
func (p Point2) DistSq(op Point2) int64 { return p.Sub(op).Norm2() }

// Equals reports whether p and op are the bit-identical same point.
func (p Point2) Equals(op Point2) bool { return p.X == op.X && p.Y == op.Y }

// Point3 is a 3D position in integer micrometers: an XY position plus an
// explicit Z ordinate, per spec.md's IntPoint3.
type Point3 struct {
	X, Y, Z int64
}

func (p Point3) String() string { return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z) }

// XY returns the 2D projection of p, discarding Z.
func (p Point3) XY() Point2 { return Point2{p.X, p.Y} }

// Sub returns the standard vector difference of p and op.
func (p Point3) Sub(op Point3) Point3 { return Point3{p.X - op.X, p.Y - op.Y, p.Z - op.Z} }

// Norm2 returns the squared 3D length of p.
func (p Point3) Norm2() int64 { return p.X*p.X + p.Y*p.Y + p.Z*p.Z }

// Equals reports whether p and op are the bit-identical same point.
func (p Point3) Equals(op Point3) bool { return p.X == op.X && p.Y == op.Y && p.Z == op.Z }

// Point3At lifts a 2D point to 3D at the given Z ordinate.
func Point3At(xy Point2, z int64) Point3 { return Point3{xy.X, xy.Y, z} }
