package sorting

// Insertion finds the slot for each element by scanning left, then shifts
// the run once and records a single Insert at the slot.
func Insertion(nums []int, rec Recorder) {
	for i := 1; i < len(nums); i++ {
		j := i
		for j > 0 {
			emit(rec, Compare(j-1, i), nums)
			if nums[j-1] <= nums[i] {
				break
			}
			j--
		}

		if j != i {
			v := nums[i]
			copy(nums[j+1:i+1], nums[j:i])
			nums[j] = v
			emit(rec, Insert(j), nums)
		}
	}
	emit(rec, Noop(), nums)
}
