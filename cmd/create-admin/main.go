package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/folio/internal/config"
	"github.com/folio/internal/db"
)

// 创建后台管理员账号，未指定时读取 SUPER_ROOT_USER_NAME / SUPER_ROOT_PASSWORD。
func main() {
	cfg := config.Load()

	username := flag.String("username", cfg.SuperRootUserName, "admin username")
	password := flag.String("password", cfg.SuperRootPassword, "admin password")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: create-admin -username <name> -password <password>")
		os.Exit(2)
	}

	// 初始化数据库
	gdb, err := db.Init(cfg.DatabaseDriver, cfg.DSN())
	if err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	created, err := db.EnsureUser(gdb, *username, *password)
	if err != nil {
		log.Fatal("创建用户失败:", err)
	}
	if !created {
		fmt.Printf("用户 %s 已存在，无需初始化\n", *username)
		return
	}

	fmt.Println("管理员用户创建成功")
	fmt.Println("用户名:", *username)
}
