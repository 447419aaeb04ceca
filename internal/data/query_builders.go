package data

import (
	"fmt"
	"strings"

	"etuition/internal/model"
)

var ErrNoFieldsToUpdate = fmt.Errorf("no fields to update")

func buildProfileUpdateQuery(input *model.UpdateProfileInput) (string, []any, error) {
	var set []string
	var args []any
	argIdx := 1

	if input.DisplayName != nil {
		set = append(set, fmt.Sprintf("display_name = $%d", argIdx))
		args = append(args, input.DisplayName)
		argIdx++
	}
	if input.Phone != nil {
		set = append(set, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, input.Phone)
		argIdx++
	}
	if input.PhotoURL != nil {
		set = append(set, fmt.Sprintf("photo_url = $%d", argIdx))
		args = append(args, input.PhotoURL)
		argIdx++
	}

	if len(set) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	query := fmt.Sprintf(
		`
UPDATE users
SET %s
WHERE email = $%d
RETURNING
	id, email, display_name, photo_url,
	phone, firebase_uid, role, created_at
`,
		strings.Join(set, ", "),
		argIdx,
	)
	return query, args, nil
}

func buildAdminUserUpdateQuery(input *model.AdminUpdateUserInput) (string, []any, error) {
	var set []string
	var args []any
	argIdx := 1

	if input.DisplayName != nil {
		set = append(set, fmt.Sprintf("display_name = $%d", argIdx))
		args = append(args, input.DisplayName)
		argIdx++
	}
	if input.Phone != nil {
		set = append(set, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, input.Phone)
		argIdx++
	}
	if input.PhotoURL != nil {
		set = append(set, fmt.Sprintf("photo_url = $%d", argIdx))
		args = append(args, input.PhotoURL)
		argIdx++
	}
	if input.Role != nil {
		set = append(set, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, input.Role)
		argIdx++
	}

	if len(set) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	query := fmt.Sprintf(
		`
UPDATE users
SET %s
WHERE id = $%d
RETURNING
	id, email, display_name, photo_url,
	phone, firebase_uid, role, created_at
`,
		strings.Join(set, ", "),
		argIdx,
	)
	return query, args, nil
}

// buildPostUpdateQuery always resets status to Pending: owner edits re-enter
// the review queue.
func buildPostUpdateQuery(input *model.UpdatePostInput) (string, []any, error) {
	var set []string
	var args []any
	argIdx := 1

	if input.Subject != nil {
		set = append(set, fmt.Sprintf("subject = $%d", argIdx))
		args = append(args, input.Subject)
		argIdx++
	}
	if input.Location != nil {
		set = append(set, fmt.Sprintf("location = $%d", argIdx))
		args = append(args, input.Location)
		argIdx++
	}
	if input.Budget != nil {
		set = append(set, fmt.Sprintf("budget = $%d", argIdx))
		args = append(args, input.Budget)
		argIdx++
	}

	if len(set) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	set = append(set, "status = 'Pending'", "updated_at = now()")

	query := fmt.Sprintf(
		`
UPDATE tuition_posts
SET %s
WHERE id = $%d
RETURNING
	id, user_email, subject, location, budget,
	status, applied_tutors_count,
	created_at, updated_at, approved_at
`,
		strings.Join(set, ", "),
		argIdx,
	)
	return query, args, nil
}

func buildApplicationUpdateQuery(input *model.UpdateApplicationInput) (string, []any, error) {
	var set []string
	var args []any
	argIdx := 1

	if input.ExpectedSalary != nil {
		set = append(set, fmt.Sprintf("expected_salary = $%d", argIdx))
		args = append(args, input.ExpectedSalary)
		argIdx++
	}
	if input.Qualifications != nil {
		set = append(set, fmt.Sprintf("qualifications = $%d", argIdx))
		args = append(args, input.Qualifications)
		argIdx++
	}
	if input.Experience != nil {
		set = append(set, fmt.Sprintf("experience = $%d", argIdx))
		args = append(args, input.Experience)
		argIdx++
	}

	if len(set) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	query := fmt.Sprintf(
		`
UPDATE applications
SET %s
WHERE id = $%d
RETURNING
	id, tuition_id, tutor_email, tutor_name, student_email,
	expected_salary, qualifications, experience,
	status, payment_status, tracking_id,
	applied_at, payment_date
`,
		strings.Join(set, ", "),
		argIdx,
	)
	return query, args, nil
}
