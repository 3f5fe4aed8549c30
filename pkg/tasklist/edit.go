package tasklist

import "github.com/harrisonrobin/tasklist/pkg/model"

// editor asks for a new value of one field and applies it to t. It reports
// false when t was left unchanged.
type editor func(s *Session, t *model.Task) (bool, error)

var editors = map[model.Field]editor{
	model.FieldPriority: editPriority,
	model.FieldDate:     editDate,
	model.FieldTime:     editTime,
	model.FieldTask:     editLines,
}

func editPriority(s *Session, t *model.Task) (bool, error) {
	p, err := s.Prompt.Priority()
	if err != nil {
		return false, err
	}
	t.Priority = p
	return true, nil
}

func editDate(s *Session, t *model.Task) (bool, error) {
	date, err := s.Prompt.Date()
	if err != nil {
		return false, err
	}
	return true, t.SetDate(date, s.now())
}

func editTime(s *Session, t *model.Task) (bool, error) {
	clock, err := s.Prompt.Time()
	if err != nil {
		return false, err
	}
	t.Time = clock
	return true, nil
}

// editLines keeps the old text when the new body is blank.
func editLines(s *Session, t *model.Task) (bool, error) {
	lines, err := s.Prompt.TaskLines()
	if err != nil || len(lines) == 0 {
		return false, err
	}
	t.Lines = lines
	return true, nil
}
