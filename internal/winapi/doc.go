// Package winapi holds the raw user32/kernel32/dwmapi bindings used by the
// window enumeration, activation, and keyboard interception layers. Only
// built on Windows; every other platform sees an empty package.
package winapi
