//go:build esp32c3

package boards

var Selected = ESP32C3DevKit
