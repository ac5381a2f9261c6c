package greenhouse

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"greentech.xyz/greenhouse-monitor-service/pkg/auth"
	"greentech.xyz/greenhouse-monitor-service/pkg/common"
	"greentech.xyz/greenhouse-monitor-service/pkg/models"
)

const (
	tempPasswordLength = 12
	passwordCharset    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*-_"

	minPasswordLength = 5
)

type NewEmployee struct {
	Name         string
	Email        string
	GreenhouseID *uint
	IsAdmin      bool
}

// CreatedEmployee carries the generated credentials back to the caller.
// TempPassword is returned exactly once; only its hash is stored.
type CreatedEmployee struct {
	Employee     models.Employee `json:"employee"`
	TempPassword string          `json:"temp_password"`
	Warnings     []string        `json:"warnings,omitempty"`
}

type EmployeeUpdate struct {
	Name         string
	Email        string
	Available    bool
	GreenhouseID *uint
	IsAdmin      *bool
}

func (g *Core) createEmployee(input *NewEmployee, actor Actor) (*CreatedEmployee, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameGreenhouseCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryEmployee),
	)

	if !actor.IsAdmin {
		return nil, fmt.Errorf("create employee: %w", ErrPermissionDenied)
	}
	if input.Name == "" || input.Email == "" {
		return nil, fmt.Errorf("name and email are required: %w", ErrValidation)
	}

	var existing models.Employee
	if err := g.Db.Conn.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("an employee with email %q already exists: %w", input.Email, ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if input.GreenhouseID != nil {
		if _, err := g.getGreenhouse(*input.GreenhouseID); err != nil {
			return nil, err
		}
	}

	tempPassword, err := generatePassword(tempPasswordLength)
	if err != nil {
		return nil, err
	}
	companyID, err := g.generateUniqueCompanyID()
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(tempPassword, g.Cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	employee := models.Employee{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Available:    true,
		GreenhouseID: input.GreenhouseID,
		CompanyID:    companyID,
		IsAdmin:      input.IsAdmin,
	}
	if err := g.Db.Conn.Create(&employee).Error; err != nil {
		return nil, err
	}

	logger.Info("Employee created",
		zap.String("name", employee.Name),
		zap.String("email", employee.Email),
		zap.String("company_id", employee.CompanyID),
		zap.Bool("is_admin", employee.IsAdmin))

	result := &CreatedEmployee{Employee: employee, TempPassword: tempPassword}

	// welcome mail goes out after the row is committed; a failed send
	// leaves the account intact and the caller holding the password
	subject := "Welcome to GreenTech Monitoring - Your Account Details"
	body := fmt.Sprintf(`Hello %s,

Welcome to the GreenTech Monitoring System!
Your account has been created successfully.

You can log in using the following credentials:
Email: %s
Temporary Password: %s

We strongly recommend changing this password after your first login.

Regards,
The GreenTech Team
`, employee.Name, employee.Email, tempPassword)

	if g.Notifier == nil || !g.Notifier.Send(subject, []string{employee.Email}, body) {
		result.Warnings = append(result.Warnings,
			"Employee created, but the welcome email could not be sent. Please manually provide the password to the user.")
	}

	return result, nil
}

func (g *Core) updateEmployee(employeeID uint, input *EmployeeUpdate, actor Actor) (*models.Employee, error) {
	if !actor.IsAdmin && actor.EmployeeID != employeeID {
		return nil, fmt.Errorf("edit employee %d: %w", employeeID, ErrPermissionDenied)
	}

	employee, err := g.getEmployee(employeeID)
	if err != nil {
		return nil, err
	}

	if input.Name == "" || input.Email == "" {
		return nil, fmt.Errorf("name and email cannot be empty: %w", ErrValidation)
	}

	if input.Email != employee.Email {
		var other models.Employee
		err := g.Db.Conn.
			Where("email = ? AND id <> ?", input.Email, employeeID).
			First(&other).Error
		if err == nil {
			return nil, fmt.Errorf("another employee is already using email %q: %w", input.Email, ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if input.GreenhouseID != nil {
		if _, err := g.getGreenhouse(*input.GreenhouseID); err != nil {
			return nil, err
		}
	}

	employee.Name = input.Name
	employee.Email = input.Email
	employee.Available = input.Available
	employee.GreenhouseID = input.GreenhouseID
	if input.IsAdmin != nil && actor.IsAdmin {
		employee.IsAdmin = *input.IsAdmin
	}

	if err := g.Db.Conn.Save(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

func (g *Core) getEmployee(employeeID uint) (*models.Employee, error) {
	var employee models.Employee
	if err := g.Db.Conn.First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee %d: %w", employeeID, ErrNotFound)
		}
		return nil, err
	}
	return &employee, nil
}

func (g *Core) listEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	err := g.Db.Conn.Order("name").Find(&employees).Error
	return employees, err
}

func (g *Core) authenticate(email string, password string) (*models.Employee, error) {
	var employee models.Employee
	if err := g.Db.Conn.Where("email = ?", email).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.VerifyPassword(employee.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &employee, nil
}

func (g *Core) changePassword(actor Actor, currentPassword string, newPassword string) error {
	employee, err := g.getEmployee(actor.EmployeeID)
	if err != nil {
		return err
	}

	if !auth.VerifyPassword(employee.PasswordHash, currentPassword) {
		return fmt.Errorf("incorrect current password: %w", ErrInvalidCredentials)
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("new password is too short: %w", ErrValidation)
	}

	hash, err := auth.HashPassword(newPassword, g.Cfg.BcryptCost)
	if err != nil {
		return err
	}

	return g.Db.Conn.Model(employee).Update("password_hash", hash).Error
}

// BootstrapAdmin creates the initial admin account when no employee with
// that email exists yet. Used by the server's -create-admin path.
func (g *Core) BootstrapAdmin(name string, email string, password string) (*models.Employee, error) {
	var existing models.Employee
	if err := g.Db.Conn.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("admin with email %q already exists: %w", email, ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	companyID, err := g.generateUniqueCompanyID()
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(password, g.Cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	admin := models.Employee{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Available:    true,
		CompanyID:    companyID,
		IsAdmin:      true,
	}
	if err := g.Db.Conn.Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func generatePassword(length int) (string, error) {
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordCharset))))
		if err != nil {
			return "", err
		}
		out[i] = passwordCharset[n.Int64()]
	}
	return string(out), nil
}

// generateUniqueCompanyID keeps drawing GT-prefixed 6-digit ids until one
// is free. Collisions are rare enough that a retry loop is fine.
func (g *Core) generateUniqueCompanyID() (string, error) {
	for {
		n, err := rand.Int(rand.Reader, big.NewInt(900000))
		if err != nil {
			return "", err
		}
		companyID := fmt.Sprintf("GT%d", n.Int64()+100000)

		var existing models.Employee
		err = g.Db.Conn.Where("company_id = ?", companyID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return companyID, nil
		}
		if err != nil {
			return "", err
		}
	}
}

type IEmployeeImpl struct {
	core *Core
}

func (ie *IEmployeeImpl) CreateEmployee(input *NewEmployee, actor Actor) (*CreatedEmployee, error) {
	return ie.core.createEmployee(input, actor)
}

func (ie *IEmployeeImpl) UpdateEmployee(employeeID uint, input *EmployeeUpdate, actor Actor) (*models.Employee, error) {
	return ie.core.updateEmployee(employeeID, input, actor)
}

func (ie *IEmployeeImpl) GetEmployee(employeeID uint) (*models.Employee, error) {
	return ie.core.getEmployee(employeeID)
}

func (ie *IEmployeeImpl) ListEmployees() ([]models.Employee, error) {
	return ie.core.listEmployees()
}

func (ie *IEmployeeImpl) Authenticate(email string, password string) (*models.Employee, error) {
	return ie.core.authenticate(email, password)
}

func (ie *IEmployeeImpl) ChangePassword(actor Actor, currentPassword string, newPassword string) error {
	return ie.core.changePassword(actor, currentPassword, newPassword)
}

func (g *Core) GetIEmployee() IEmployee {
	return &IEmployeeImpl{core: g}
}
