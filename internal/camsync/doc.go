// Package camsync mirrors a camera directory from an Android device into a
// local directory, pulling only the files that are missing locally.
package camsync
