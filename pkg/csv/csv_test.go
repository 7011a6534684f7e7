package csv

import (
	"bytes"
	"strings"
	"testing"
)

type row struct {
	name, amount string
}

func (r row) Fields() []string { return []string{r.name, r.amount} }

func TestCreate(t *testing.T) {
	rows := []row{
		{"Бар", "1200.00"},
		{"Кухня", "850.50"},
	}

	out := string(Create([]string{"Категория", "Сумма"}, rows, nil))
	want := "Категория,Сумма\nБар,1200.00\nКухня,850.50\n"
	if out != want {
		t.Errorf("Create = %q, want %q", out, want)
	}
}

func TestCreateWithFilter(t *testing.T) {
	rows := []row{
		{"Бар", "1200.00"},
		{"Кухня", "850.50"},
	}
	filter := func(r row) bool { return r.name == "Бар" }

	out := string(Create([]string{"Категория", "Сумма"}, rows, filter))
	if strings.Contains(out, "Кухня") {
		t.Errorf("filtered row leaked into output: %q", out)
	}
	if !strings.Contains(out, "Бар") {
		t.Errorf("kept row missing from output: %q", out)
	}
}

func TestQuoting(t *testing.T) {
	rows := []row{{`товар "люкс", импорт`, "10.00"}}

	out := string(Create([]string{"a", "b"}, rows, nil))
	want := "a,b\n\"товар \"\"люкс\"\", импорт\",10.00\n"
	if out != want {
		t.Errorf("Create = %q, want %q", out, want)
	}
}

func TestSection(t *testing.T) {
	var buf bytes.Buffer
	Section(&buf, "Доходы", []string{"Категория", "Сумма"}, []row{{"Бар", "1200.00"}})
	Section[row](&buf, "Пусто", []string{"x"}, nil)
	Section(&buf, "Расходы", []string{"Статья", "Сумма"}, []row{{"Такси", "300.00"}})

	out := buf.String()
	if strings.Contains(out, "Пусто") {
		t.Errorf("empty section rendered: %q", out)
	}
	wantOrder := []string{"Доходы", "Бар", "Расходы", "Такси"}
	last := -1
	for _, token := range wantOrder {
		idx := strings.Index(out, token)
		if idx <= last {
			t.Fatalf("token %q out of order in %q", token, out)
		}
		last = idx
	}
	if !strings.Contains(out, "\n\nРасходы") {
		t.Errorf("sections must be separated by a blank line: %q", out)
	}
}
