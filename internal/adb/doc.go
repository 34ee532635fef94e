// Package adb shells out to the Android Debug Bridge for the small set of
// device operations camsync needs: state checks, remote listings, and pulls.
package adb
