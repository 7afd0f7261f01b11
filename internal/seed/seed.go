// Package seed holds initial data used when storage has nothing to offer
package seed

import "github.com/umalmyha/customer-templates/internal/model"

// Users returns reference users
func Users() []model.User {
	return []model.User{
		{ID: "1", Name: "Nguyễn Văn A", Role: "Trưởng phòng kinh doanh"},
		{ID: "2", Name: "Trần Thị B", Role: "Nhân viên kinh doanh"},
		{ID: "3", Name: "Lê Văn C", Role: "Nhân viên tư vấn"},
		{ID: "4", Name: "Phạm Thị D", Role: "Quản lý khách hàng"},
	}
}

// Templates returns initial templates
func Templates() []model.Template {
	return []model.Template{
		{
			ID:           "1",
			Name:         "Biểu mẫu đánh giá sơ bộ",
			FileName:     "bieu-mau-danh-gia-so-bo.docx",
			Placeholders: []string{"{Tên khách hàng}", "{Mã số thuế}", "{Ngày cấp GĐKKD}", "{Người đại diện}"},
			CreatedAt:    "2024-01-15",
		},
		{
			ID:           "2",
			Name:         "Hợp đồng dịch vụ",
			FileName:     "hop-dong-dich-vu.docx",
			Placeholders: []string{"{Tên khách hàng}", "{Mã hợp đồng}", "{Địa chỉ}", "{Email}", "{Số điện thoại}"},
			CreatedAt:    "2024-01-10",
		},
		{
			ID:           "3",
			Name:         "Báo giá dịch vụ",
			FileName:     "bao-gia-dich-vu.docx",
			Placeholders: []string{"{Tên khách hàng}", "{Người đại diện}", "{Chức vụ}", "{Email}"},
			CreatedAt:    "2024-01-05",
		},
	}
}

// Customers returns initial customers
func Customers() []model.Customer {
	return []model.Customer{
		{
			ID:                  "1",
			Code:                "KH001",
			Name:                "Công ty TNHH ABC",
			TaxNumber:           "0123456789",
			BusinessLicenseDate: "2020-01-15",
			Representative:      "Nguyễn Văn An",
			Position:            "Giám đốc",
			Email:               "contact@abc.com.vn",
			Phone:               "0901234567",
			Address:             "123 Đường ABC, Quận 1, TP.HCM",
			Category:            model.CategoryClosed,
			Assignee:            "Nguyễn Văn A",
			CreatedBy:           "Trần Thị B",
			CreatedAt:           "2024-01-20",
			Templates: []model.CustomerTemplate{
				{ID: "1", TemplateID: "1", TemplateName: "Biểu mẫu đánh giá sơ bộ", FileName: "danh-gia-so-bo-abc.docx", CreatedAt: "2024-01-21"},
				{ID: "2", TemplateID: "2", TemplateName: "Hợp đồng dịch vụ", FileName: "hop-dong-abc.docx", CreatedAt: "2024-01-22"},
			},
		},
		{
			ID:                  "2",
			Code:                "KH002",
			Name:                "Công ty Cổ phần XYZ",
			TaxNumber:           "0987654321",
			BusinessLicenseDate: "2019-05-20",
			Representative:      "Trần Thị Bích",
			Position:            "Tổng giám đốc",
			Email:               "info@xyz.vn",
			Phone:               "0912345678",
			Address:             "456 Đường XYZ, Quận 3, TP.HCM",
			Category:            model.CategoryPotential,
			Assignee:            "Lê Văn C",
			CreatedBy:           "Nguyễn Văn A",
			CreatedAt:           "2024-01-18",
			Templates: []model.CustomerTemplate{
				{ID: "3", TemplateID: "3", TemplateName: "Báo giá dịch vụ", FileName: "bao-gia-xyz.docx", CreatedAt: "2024-01-19"},
			},
		},
		{
			ID:                  "3",
			Code:                "KH003",
			Name:                "Doanh nghiệp DEF",
			TaxNumber:           "0555666777",
			BusinessLicenseDate: "2021-03-10",
			Representative:      "Lê Văn Cường",
			Position:            "Chủ doanh nghiệp",
			Email:               "contact@def.com",
			Phone:               "0923456789",
			Address:             "789 Đường DEF, Quận 7, TP.HCM",
			Category:            model.CategoryRegular,
			Assignee:            "Phạm Thị D",
			CreatedBy:           "Trần Thị B",
			CreatedAt:           "2024-01-15",
			Templates:           []model.CustomerTemplate{},
		},
		{
			ID:                  "4",
			Code:                "KH004",
			Name:                "Công ty TNHH GHI",
			TaxNumber:           "0333444555",
			BusinessLicenseDate: "2022-07-25",
			Representative:      "Phạm Thị Dao",
			Position:            "Giám đốc điều hành",
			Email:               "admin@ghi.vn",
			Phone:               "0934567890",
			Address:             "321 Đường GHI, Quận 2, TP.HCM",
			Category:            model.CategoryPromising,
			Assignee:            "Nguyễn Văn A",
			CreatedBy:           "Lê Văn C",
			CreatedAt:           "2024-01-12",
			Templates: []model.CustomerTemplate{
				{ID: "4", TemplateID: "1", TemplateName: "Biểu mẫu đánh giá sơ bộ", FileName: "danh-gia-so-bo-ghi.docx", CreatedAt: "2024-01-13"},
			},
		},
	}
}
