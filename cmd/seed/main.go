package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"contactcenter/internal/activitylog"
	"contactcenter/internal/auth"
	"contactcenter/internal/config"
	"contactcenter/internal/consultation"
	"contactcenter/internal/contact"
	"contactcenter/internal/entity"
	"contactcenter/internal/history"
	"contactcenter/internal/infra"
	"contactcenter/internal/logger"
	"contactcenter/internal/management"
	"contactcenter/internal/monitoring"
	"contactcenter/internal/payroll"
	"contactcenter/internal/specialcase"
	"contactcenter/internal/typemanagement"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedFile 种子数据文件结构
type SeedFile struct {
	Admin struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
	Consultations []struct {
		Name      string   `yaml:"name"`
		Specifics []string `yaml:"specifics"`
	} `yaml:"consultations"`
	Payrolls        []string `yaml:"payrolls"`
	TypeManagements []string `yaml:"typemanagements"`
	Monitorings     []string `yaml:"monitorings"`
}

func main() {
	seedPath := flag.String("file", "config/seed.yaml", "种子数据文件路径")
	flag.Parse()

	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	cfg, err := config.Load(env, "")
	if err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath); err != nil {
		fmt.Printf("初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := infra.InitDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal("初始化数据库失败", zap.Error(err))
	}
	defer infra.CloseDatabase()

	if err := infra.AutoMigrate(db,
		&auth.User{},
		&entity.Entity{},
		&contact.Contact{},
		&management.Management{},
		&specialcase.SpecialCase{},
		&consultation.Consultation{},
		&consultation.Specific{},
		&payroll.Payroll{},
		&typemanagement.TypeManagement{},
		&monitoring.Monitoring{},
		&history.ChangeHistory{},
		&activitylog.ActivityLog{},
	); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	seed, err := loadSeedFile(*seedPath)
	if err != nil {
		logger.Fatal("读取种子数据失败", zap.String("path", *seedPath), zap.Error(err))
	}

	if err := seedAdmin(db, seed); err != nil {
		logger.Fatal("写入管理员账号失败", zap.Error(err))
	}

	if err := seedTaxonomy(db, seed); err != nil {
		logger.Fatal("写入咨询分类失败", zap.Error(err))
	}

	if err := seedLookups(db, seed); err != nil {
		logger.Fatal("写入基础字典失败", zap.Error(err))
	}

	logger.Info("种子数据导入完成")
}

// loadSeedFile 解析 YAML 种子数据
func loadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("解析 YAML 失败: %w", err)
	}
	return &seed, nil
}

// seedAdmin 按邮箱幂等写入管理员账号
func seedAdmin(db *gorm.DB, seed *SeedFile) error {
	if seed.Admin.Email == "" {
		logger.Info("种子数据未配置管理员账号，跳过")
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(seed.Admin.Email))

	var existing auth.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		logger.Info("管理员账号已存在，跳过", zap.String("email", email))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user := &auth.User{
		Name:     seed.Admin.Name,
		Email:    email,
		IsActive: true,
	}
	if err := user.SetPassword(seed.Admin.Password); err != nil {
		return err
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}

	logger.Info("管理员账号已创建", zap.String("email", email))
	return nil
}

// seedTaxonomy 按名称幂等写入咨询大类和细项
func seedTaxonomy(db *gorm.DB, seed *SeedFile) error {
	for _, item := range seed.Consultations {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}

		cons := consultation.Consultation{Name: name, IsActive: true}
		if err := db.Where("name = ?", name).FirstOrCreate(&cons).Error; err != nil {
			return err
		}

		for _, specName := range item.Specifics {
			specName = strings.TrimSpace(specName)
			if specName == "" {
				continue
			}

			spec := consultation.Specific{
				Name:           specName,
				ConsultationID: cons.ID,
				IsActive:       true,
			}
			err := db.Where("name = ? AND consultation_id = ?", specName, cons.ID).
				FirstOrCreate(&spec).Error
			if err != nil {
				return err
			}
		}

		logger.Info("咨询大类已就绪",
			zap.String("name", name),
			zap.Int("specifics", len(item.Specifics)),
		)
	}
	return nil
}

// seedLookups 按名称幂等写入发薪单位、处理类型和质检项
func seedLookups(db *gorm.DB, seed *SeedFile) error {
	for _, name := range seed.Payrolls {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		p := payroll.Payroll{Name: name, IsActive: true}
		if err := db.Where("name = ?", name).FirstOrCreate(&p).Error; err != nil {
			return err
		}
	}

	for _, name := range seed.TypeManagements {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		tm := typemanagement.TypeManagement{Name: name, IsActive: true}
		if err := db.Where("name = ?", name).FirstOrCreate(&tm).Error; err != nil {
			return err
		}
	}

	for _, name := range seed.Monitorings {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		m := monitoring.Monitoring{Name: name, IsActive: true}
		if err := db.Where("name = ?", name).FirstOrCreate(&m).Error; err != nil {
			return err
		}
	}

	logger.Info("基础字典已就绪",
		zap.Int("payrolls", len(seed.Payrolls)),
		zap.Int("typemanagements", len(seed.TypeManagements)),
		zap.Int("monitorings", len(seed.Monitorings)),
	)
	return nil
}
