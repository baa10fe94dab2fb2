package main

import (
	"flag"
	"fmt"
	"log"

	"user-center/config"
	"user-center/internal/model"
	"user-center/internal/repository"
	"user-center/internal/service"
	dbPkg "user-center/pkg/db"
	"user-center/pkg/jwt"
)

// 创建超级管理员账号的命令行工具
// 用法: go run ./tools/create_admin -email admin@example.com -password xxx -nickname admin

func main() {
	email := flag.String("email", "", "管理员邮箱（必填）")
	password := flag.String("password", "", "管理员密码（必填）")
	nickname := flag.String("nickname", "admin", "管理员昵称")
	fullName := flag.String("full-name", "", "管理员姓名")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("email 和 password 为必填参数")
	}

	cfg := config.LoadConfig()

	db, err := dbPkg.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}
	defer dbPkg.CloseDB()

	if err := dbPkg.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("自动迁移失败: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	jwtSvc := jwt.NewJWTService(cfg.JWT)
	userSvc := service.NewUserService(userRepo, jwtSvc, nil, repository.IsDuplicateEntry)

	user, err := userSvc.CreateSuperuser(*email, *password, service.AccountFields{
		Nickname: *nickname,
		FullName: *fullName,
	})
	if err != nil {
		log.Fatalf("创建超级管理员失败: %v", err)
	}

	fmt.Println("超级管理员创建成功")
	fmt.Printf("ID:    %s\n", user.ID)
	fmt.Printf("邮箱:  %s\n", user.Email)
	fmt.Printf("昵称:  %s\n", user.Nickname)
}
