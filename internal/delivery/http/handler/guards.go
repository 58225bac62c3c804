package handler

import "github.com/gofiber/fiber/v3"

// guardedRoute registers path with the guards ahead of the terminal handler.
// Fiber v3 executes the (handler, handlers...) argument list in order, so the
// guards must be passed first for them to run before the route handler.
func guardedRoute(add func(string, any, ...any) fiber.Router, path string, h fiber.Handler, guards []any) {
	if len(guards) == 0 {
		add(path, h)
		return
	}
	rest := make([]any, 0, len(guards))
	rest = append(rest, guards[1:]...)
	rest = append(rest, h)
	add(path, guards[0], rest...)
}
