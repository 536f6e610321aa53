// Package glctx defines the WebGL-like graphics context surface consumed by
// glview.
//
// The context is supplied by the host application (a browser canvas binding,
// an ANGLE/EGL wrapper, a test fake); glview never creates one. Only the
// calls the resource and state-tracking layers actually issue are part of
// the interface, so host bindings stay small.
//
// Resource handles are opaque integers. The zero handle is never a valid
// resource, mirroring WebGL's null object semantics.
package glctx
