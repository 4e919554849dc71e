// Package pixel implements the color and framebuffer image types used by the
// RM690B0 driver.
//
// This module provides additional color models, compatible with Go's native
// [color.Color] and [image.Image] / [draw.Image] interfaces. One image type
// exists per interface pixel format the controller supports, each backed by a
// byte buffer laid out exactly as the controller expects it on the wire.
package pixel
