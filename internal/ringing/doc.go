// Package ringing walks a finished extent row by row and emits the calls
// and bell strikes a band would hear. Bells assigned to people are left
// silent so that they can ring them.
package ringing
