package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
	RoleAdmin   Role = "admin"

	// RoleDefault is reported for emails without a user record.
	RoleDefault Role = "user"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleTutor || r == RoleAdmin
}

type PostStatus string

const (
	PostStatusPending  PostStatus = "Pending"
	PostStatusApproved PostStatus = "Approved"
	PostStatusRejected PostStatus = "Rejected"
)

func (s PostStatus) String() string {
	return string(s)
}

func (s PostStatus) IsValid() bool {
	return s == PostStatusPending || s == PostStatusApproved || s == PostStatusRejected
}

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusApproved ApplicationStatus = "Approved"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) String() string {
	return string(s)
}

func (s ApplicationStatus) IsValid() bool {
	return s == ApplicationStatusPending || s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

type PaymentState string

const (
	PaymentStateUnpaid PaymentState = "Unpaid"
	PaymentStatePaid   PaymentState = "Paid"
)

func (s PaymentState) String() string {
	return string(s)
}

type User struct {
	Id          uuid.UUID `db:"id" json:"id"`
	Email       string    `db:"email" json:"email"`
	DisplayName *string   `db:"display_name" json:"displayName"`
	PhotoURL    *string   `db:"photo_url" json:"photoURL"`
	Phone       *string   `db:"phone" json:"phone"`
	FirebaseUID *string   `db:"firebase_uid" json:"firebaseUID"`
	Role        Role      `db:"role" json:"role"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type TuitionPost struct {
	Id                 uuid.UUID  `db:"id" json:"id"`
	UserEmail          string     `db:"user_email" json:"userEmail"`
	Subject            string     `db:"subject" json:"subject"`
	Location           string     `db:"location" json:"location"`
	Budget             int64      `db:"budget" json:"budget"`
	Status             PostStatus `db:"status" json:"status"`
	AppliedTutorsCount int32      `db:"applied_tutors_count" json:"appliedTutorsCount"`
	CreatedAt          time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt          *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
	ApprovedAt         *time.Time `db:"approved_at" json:"approvedAt,omitempty"`
}

type Application struct {
	Id             uuid.UUID         `db:"id" json:"id"`
	TuitionId      uuid.UUID         `db:"tuition_id" json:"tuitionId"`
	TutorEmail     string            `db:"tutor_email" json:"tutorEmail"`
	TutorName      *string           `db:"tutor_name" json:"tutorName,omitempty"`
	StudentEmail   string            `db:"student_email" json:"studentEmail"`
	ExpectedSalary int64             `db:"expected_salary" json:"expectedSalary"`
	Qualifications *string           `db:"qualifications" json:"qualifications,omitempty"`
	Experience     *string           `db:"experience" json:"experience,omitempty"`
	Status         ApplicationStatus `db:"status" json:"status"`
	PaymentStatus  PaymentState      `db:"payment_status" json:"paymentStatus"`
	TrackingId     *string           `db:"tracking_id" json:"trackingId,omitempty"`
	AppliedAt      time.Time         `db:"applied_at" json:"appliedAt"`
	PaymentDate    *time.Time        `db:"payment_date" json:"paymentDate,omitempty"`
}

// ApplicationWithPost is the tutor's own view, joined with the post.
type ApplicationWithPost struct {
	Application
	TuitionDetails *TuitionPost `json:"tuitionDetails"`
}

type Payment struct {
	Id            uuid.UUID `db:"id" json:"id"`
	TutorEmail    string    `db:"tutor_email" json:"tutorEmail"`
	StudentEmail  string    `db:"student_email" json:"studentEmail"`
	TuitionId     uuid.UUID `db:"tuition_id" json:"tuitionId"`
	TutorName     string    `db:"tutor_name" json:"tutorName"`
	Amount        int64     `db:"amount" json:"amount"`
	TransactionId string    `db:"transaction_id" json:"transactionId"`
	TrackingId    string    `db:"tracking_id" json:"trackingId"`
	PaymentDate   time.Time `db:"payment_date" json:"paymentDate"`
}
