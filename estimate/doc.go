// Package estimate produces pre-flight cost estimates: what a wizard
// step will cost before the user commits to the real call.
//
// USD figures are computed in decimal arithmetic and rounded to six
// places, half away from zero, per component. The total is the sum of
// the already-rounded input and output figures, so the displayed numbers
// always add up exactly.
//
// Missing pricing is not an error: the estimate comes back with real
// token counts and zero dollars, and the frontend renders what it can.
package estimate
