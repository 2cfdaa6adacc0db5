package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terzostudio/gestionale/internal/models"
	"github.com/terzostudio/gestionale/internal/services"
)

func (handler *Handler) ListTasks(c *fiber.Ctx) error {
	tasks, err := handler.repositories.Tasks.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load tasks")
	}

	return handler.render(c, "tasks", fiber.Map{
		"Title":      translateMessage(currentMessages(c), "tasks.title"),
		"Tasks":      tasks,
		"Priorities": models.Priorities(),
	})
}

// CreateTask silently drops input with a blank title: no row is inserted and
// no error is shown.
func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	task, ok := services.BuildTask(services.TaskInput{
		Title:    c.FormValue("title"),
		DueDate:  c.FormValue("due_date"),
		Priority: c.FormValue("priority"),
	})
	if ok {
		task.CreatedAt = time.Now().In(handler.location)
		if err := handler.repositories.Tasks.Create(&task); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("failed to create task")
		}
		handler.setFlashCookie(c, FlashPayload{MessageKey: "flash.task_created", Category: "success"})
	}
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

func (handler *Handler) ToggleTask(c *fiber.Ctx) error {
	taskID, _ := parseIDParam(c)

	if _, err := handler.repositories.Tasks.Toggle(taskID); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to toggle task")
	}
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	taskID, _ := parseIDParam(c)

	if err := handler.repositories.Tasks.Delete(taskID); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to delete task")
	}
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}
