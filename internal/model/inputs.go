package model

import (
	"time"

	"github.com/google/uuid"
)

type UpsertUserInput struct {
	Email       string  `json:"email"`
	Name        *string `json:"name"`
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoURL"`
	Phone       *string `json:"phone"`
	FirebaseUID *string `json:"firebaseUID"`
	Role        *Role   `json:"role"`
}

type UpsertUserResult struct {
	User      *User
	IsNewUser bool
}

type UpdateProfileInput struct {
	DisplayName *string `json:"displayName"`
	Phone       *string `json:"phone"`
	PhotoURL    *string `json:"photoURL"`
}

type AdminUpdateUserInput struct {
	DisplayName *string `json:"displayName"`
	Phone       *string `json:"phone"`
	PhotoURL    *string `json:"photoURL"`
	Role        *Role   `json:"role"`
}

type CreatePostInput struct {
	UserEmail string `json:"userEmail"`
	Subject   string `json:"subject"`
	Location  string `json:"location"`
	Budget    int64  `json:"budget"`
}

type UpdatePostInput struct {
	Subject  *string `json:"subject"`
	Location *string `json:"location"`
	Budget   *int64  `json:"budget"`
}

type ApplyInput struct {
	TuitionId      string  `json:"tuitionId"`
	TutorEmail     string  `json:"tutorEmail"`
	TutorName      *string `json:"tutorName"`
	ExpectedSalary int64   `json:"expectedSalary"`
	Qualifications *string `json:"qualifications"`
	Experience     *string `json:"experience"`
}

type UpdateApplicationInput struct {
	ExpectedSalary *int64  `json:"expectedSalary"`
	Qualifications *string `json:"qualifications"`
	Experience     *string `json:"experience"`
}

type CheckoutInput struct {
	TuitionId      string `json:"tuitionId"`
	TutorEmail     string `json:"tutorEmail"`
	StudentEmail   string `json:"studentEmail"`
	TutorName      string `json:"tutorName"`
	ExpectedSalary int64  `json:"expectedSalary"`
}

type ConfirmPaymentResult struct {
	TransactionId string
	TrackingId    string
}

type RecordPaymentInput struct {
	TutorEmail    string    `json:"tutorEmail"`
	StudentEmail  string    `json:"studentEmail"`
	TuitionId     string    `json:"tuitionId"`
	TutorName     string    `json:"tutorName"`
	Amount        int64     `json:"amount"`
	TransactionId string    `json:"transactionId"`
	TrackingId    string    `json:"trackingId"`
	PaymentDate   time.Time `json:"paymentDate"`
}

type EarningsReport struct {
	TotalEarnings   int64      `json:"totalEarnings"`
	AllTransactions []*Payment `json:"allTransactions"`
	TotalCount      int64      `json:"totalCount"`
	TotalPages      int64      `json:"totalPages"`
}

type RevenueReport struct {
	TotalRevenue   int64      `json:"totalRevenue"`
	PaymentHistory []*Payment `json:"paymentHistory"`
}

// Repository-level inputs. Ids are generated in the service layer.

type RepositoryCreateUserInput struct {
	Id          uuid.UUID
	Email       string
	DisplayName *string
	PhotoURL    *string
	Phone       *string
	FirebaseUID *string
	Role        Role
}

type RepositoryCreatePostInput struct {
	Id        uuid.UUID
	UserEmail string
	Subject   string
	Location  string
	Budget    int64
	Status    PostStatus
}

type RepositoryCreateApplicationInput struct {
	Id             uuid.UUID
	TuitionId      uuid.UUID
	TutorEmail     string
	TutorName      *string
	StudentEmail   string
	ExpectedSalary int64
	Qualifications *string
	Experience     *string
	Status         ApplicationStatus
	PaymentStatus  PaymentState
}

type RepositoryCreatePaymentInput struct {
	Id            uuid.UUID
	TutorEmail    string
	StudentEmail  string
	TuitionId     uuid.UUID
	TutorName     string
	Amount        int64
	TransactionId string
	TrackingId    string
	PaymentDate   time.Time
}

type RepositorySettleApplicationInput struct {
	TuitionId   uuid.UUID
	TutorEmail  string
	TrackingId  string
	PaymentDate time.Time
}
