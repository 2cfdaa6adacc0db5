package db

import (
	"testing"

	"github.com/terzostudio/gestionale/internal/models"
)

func TestTaskListOrdersOpenTasksFirstByDueDate(t *testing.T) {
	repositories, _ := newTestRepositories(t)

	for _, task := range []models.Task{
		{Title: "Fatto da tempo", DueDate: "2026-01-01", Done: true},
		{Title: "Scade dopo", DueDate: "2026-03-01"},
		{Title: "Scade prima", DueDate: "2026-02-01"},
	} {
		record := task
		if err := repositories.Tasks.Create(&record); err != nil {
			t.Fatalf("create task: %v", err)
		}
	}

	tasks, err := repositories.Tasks.List()
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "Scade prima" || tasks[1].Title != "Scade dopo" {
		t.Fatalf("open tasks should come first ordered by due date, got %+v", tasks)
	}
	if tasks[2].Title != "Fatto da tempo" {
		t.Fatalf("done tasks should sink to the bottom, got %+v", tasks)
	}
}

func TestTaskToggleFlipsDoneAndReportsRowsAffected(t *testing.T) {
	repositories, _ := newTestRepositories(t)

	task := models.Task{Title: "Preparare report", DueDate: "2026-04-01"}
	if err := repositories.Tasks.Create(&task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	affected, err := repositories.Tasks.Toggle(task.ID)
	if err != nil {
		t.Fatalf("toggle task: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}

	tasks, err := repositories.Tasks.List()
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if !tasks[0].Done {
		t.Fatal("task should be done after the first toggle")
	}

	if _, err := repositories.Tasks.Toggle(task.ID); err != nil {
		t.Fatalf("toggle task again: %v", err)
	}
	tasks, err = repositories.Tasks.List()
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if tasks[0].Done {
		t.Fatal("task should be open again after the second toggle")
	}
}

func TestTaskToggleOnMissingIDAffectsNoRows(t *testing.T) {
	repositories, _ := newTestRepositories(t)

	affected, err := repositories.Tasks.Toggle(99999)
	if err != nil {
		t.Fatalf("toggle missing task: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 rows affected, got %d", affected)
	}
}
