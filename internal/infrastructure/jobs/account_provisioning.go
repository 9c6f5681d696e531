package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"bank-portal.backend/internal/domain/entities"
)

// AccountProvisioner creates the first account for an approved user
type AccountProvisioner interface {
	ProvisionAccount(ctx context.Context, userID uuid.UUID) (*entities.Account, error)
}

// ApprovedUserSource lists approved users that still lack an account
type ApprovedUserSource interface {
	ListApprovedWithoutAccount(ctx context.Context) ([]*entities.User, error)
}

// AccountProvisioningJob repairs approval/provisioning drift. Approval and
// account creation are two writes without a transaction; if the process
// dies between them the user ends up approved with no account. This job
// sweeps for those users and finishes the provisioning.
type AccountProvisioningJob struct {
	users       ApprovedUserSource
	provisioner AccountProvisioner
	interval    time.Duration
	stop        chan struct{}
}

func NewAccountProvisioningJob(users ApprovedUserSource, provisioner AccountProvisioner) *AccountProvisioningJob {
	return &AccountProvisioningJob{
		users:       users,
		provisioner: provisioner,
		interval:    time.Minute,
		stop:        make(chan struct{}),
	}
}

func (j *AccountProvisioningJob) Start(ctx context.Context) {
	log.Println("🕐 Starting account provisioning job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Account provisioning job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Account provisioning job stopped")
			return
		case <-ticker.C:
			j.processUnprovisioned(ctx)
		}
	}
}

func (j *AccountProvisioningJob) Stop() {
	close(j.stop)
}

func (j *AccountProvisioningJob) processUnprovisioned(ctx context.Context) {
	users, err := j.users.ListApprovedWithoutAccount(ctx)
	if err != nil {
		log.Printf("❌ Error fetching unprovisioned users: %v", err)
		return
	}

	if len(users) == 0 {
		return
	}

	log.Printf("🔄 Provisioning accounts for %d approved users...", len(users))

	for _, user := range users {
		if _, err := j.provisioner.ProvisionAccount(ctx, user.ID); err != nil {
			log.Printf("❌ Error provisioning account for user %s: %v", user.ID, err)
			continue
		}
		log.Printf("✅ Provisioned account for user %s", user.ID)
	}
}
